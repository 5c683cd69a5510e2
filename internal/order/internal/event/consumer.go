// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/service"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var consumeCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "order",
	Name:      "event_consume_total",
	Help:      "订单服务消费事件的次数",
}, []string{"event", "result"})

const (
	resultAck     = "ack"
	resultIgnored = "ignored"
	resultDup     = "duplicated"
	resultDead    = "dead_letter"
	resultRequeue = "requeue"
)

type ConsumerConfig struct {
	Queue      string `yaml:"queue"`
	Workers    int    `yaml:"workers"`
	BufferSize int    `yaml:"bufferSize"`
	// 单条消息的处理超时
	HandleTimeout   time.Duration `yaml:"handleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	// 订阅失败之后的重试间隔
	RetryInitialInterval time.Duration `yaml:"retryInitialInterval"`
	RetryMaxInterval     time.Duration `yaml:"retryMaxInterval"`
}

func (c ConsumerConfig) withDefaults() ConsumerConfig {
	if c.Queue == "" {
		c.Queue = QueueInbound
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.BufferSize <= 0 {
		c.BufferSize = c.Workers * 2
	}
	if c.HandleTimeout <= 0 {
		c.HandleTimeout = 10 * time.Second
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 15 * time.Second
	}
	if c.RetryInitialInterval <= 0 {
		c.RetryInitialInterval = time.Second
	}
	if c.RetryMaxInterval <= 0 {
		c.RetryMaxInterval = 30 * time.Second
	}
	return c
}

// Consumer 一个订阅，多个 worker 从有界队列中取消息处理
type Consumer struct {
	b        broker.Broker
	cfg      ConsumerConfig
	handlers map[string]Handler
	logger   *elog.Component

	mu      sync.Mutex
	sub     broker.Subscription
	cancel  context.CancelFunc
	workers sync.WaitGroup
	started bool
	// 正在处理的消息使用 handleCtx，Stop 超时之后通过 abort 中断
	handleCtx context.Context
	abort     context.CancelFunc
}

func NewConsumer(b broker.Broker, cfg ConsumerConfig, handlers map[string]Handler) *Consumer {
	handleCtx, abort := context.WithCancel(context.Background())
	return &Consumer{
		b:         b,
		cfg:       cfg.withDefaults(),
		handlers:  handlers,
		logger:    elog.DefaultLogger,
		handleCtx: handleCtx,
		abort:     abort,
	}
}

func (c *Consumer) Name() string {
	return "OrderInboundConsumer"
}

// Start 立刻返回，订阅失败会在后台按照指数退避重试
func (c *Consumer) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true
	ctx, c.cancel = context.WithCancel(ctx)
	work := make(chan broker.Delivery, c.cfg.BufferSize)
	for i := 0; i < c.cfg.Workers; i++ {
		c.workers.Add(1)
		go c.work(ctx, work)
	}
	go func() {
		defer close(work)
		c.subscribeLoop(ctx, work)
	}()
}

// Stop 取消订阅并等待正在处理的消息，最多等到 ctx 结束。
// 超时之后中断正在处理的消息并关闭订阅，没有确认的消息由 broker 重新投递
func (c *Consumer) Stop(ctx context.Context) error {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	done := make(chan struct{})
	go func() {
		c.workers.Wait()
		close(done)
	}()
	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = ctx.Err()
		c.abort()
		c.logger.Warn("等待消息处理完成超时", elog.String("queue", c.cfg.Queue))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil {
		if er := c.sub.Close(); er != nil {
			c.logger.Warn("关闭订阅失败", elog.FieldErr(er))
		}
		c.sub = nil
	}
	return err
}

func (c *Consumer) subscribeLoop(ctx context.Context, work chan<- broker.Delivery) {
	strategy := c.newRetryStrategy()
	for {
		sub, err := c.b.Subscribe(ctx, c.cfg.Queue)
		if err == nil {
			c.setSubscription(sub)
			c.logger.Info("开始消费", elog.String("queue", c.cfg.Queue))
			c.pump(ctx, sub, work)
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("订阅中断，重新订阅", elog.String("queue", c.cfg.Queue))
			strategy = c.newRetryStrategy()
			continue
		}
		if ctx.Err() != nil {
			return
		}
		interval, _ := strategy.Next()
		c.logger.Error("订阅失败",
			elog.FieldErr(err),
			elog.String("queue", c.cfg.Queue),
			elog.Any("retryAfter", interval))
		select {
		case <-time.After(interval):
		case <-ctx.Done():
			return
		}
	}
}

func (c *Consumer) newRetryStrategy() *retry.ExponentialBackoffRetryStrategy {
	strategy, _ := retry.NewExponentialBackoffRetryStrategy(c.cfg.RetryInitialInterval, c.cfg.RetryMaxInterval, math.MaxInt32)
	return strategy
}

func (c *Consumer) setSubscription(sub broker.Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil {
		_ = c.sub.Close()
	}
	c.sub = sub
}

// pump 把消息转发到 work，直到订阅关闭或者 ctx 结束
func (c *Consumer) pump(ctx context.Context, sub broker.Subscription, work chan<- broker.Delivery) {
	for {
		select {
		case <-ctx.Done():
			if err := sub.Cancel(); err != nil {
				c.logger.Warn("取消订阅失败", elog.FieldErr(err))
			}
			return
		case d, ok := <-sub.Deliveries():
			if !ok {
				return
			}
			select {
			case work <- d:
			case <-ctx.Done():
				c.nack(d, true)
			}
		}
	}
}

func (c *Consumer) work(ctx context.Context, work <-chan broker.Delivery) {
	defer c.workers.Done()
	for d := range work {
		// 已经停止的情况下，缓冲区里的消息交还给 broker
		if ctx.Err() != nil {
			c.nack(d, true)
			continue
		}
		c.handle(d)
	}
}

func (c *Consumer) handle(d broker.Delivery) {
	// 停止消费时，正在处理的消息需要处理完
	ctx, cancel := context.WithTimeout(c.handleCtx, c.cfg.HandleTimeout)
	defer cancel()
	env, err := DecodeEnvelope(d.Body())
	if err != nil {
		c.logger.Error("消息格式错误，转入死信队列",
			elog.FieldErr(err),
			elog.String("routingKey", d.RoutingKey()),
			elog.String("messageId", d.MessageID()))
		consumeCounter.WithLabelValues(d.RoutingKey(), resultDead).Inc()
		c.nack(d, false)
		return
	}
	h, ok := c.handlers[env.Event]
	if !ok {
		c.logger.Info("忽略未知事件", elog.String("event", env.Event), elog.String("eventId", env.EventID))
		consumeCounter.WithLabelValues(env.Event, resultIgnored).Inc()
		c.ack(d)
		return
	}
	err = h(ctx, env)
	switch {
	case err == nil:
		consumeCounter.WithLabelValues(env.Event, resultAck).Inc()
		c.ack(d)
	case errors.Is(err, service.ErrEventAlreadyApplied):
		c.logger.Warn("重复消费", elog.String("event", env.Event), elog.String("eventId", env.EventID))
		consumeCounter.WithLabelValues(env.Event, resultDup).Inc()
		c.ack(d)
	case isPermanent(err):
		c.logger.Error("处理事件失败，转入死信队列",
			elog.FieldErr(err),
			elog.String("event", env.Event),
			elog.String("eventId", env.EventID))
		consumeCounter.WithLabelValues(env.Event, resultDead).Inc()
		c.nack(d, false)
	default:
		c.logger.Warn("处理事件失败，重新入队",
			elog.FieldErr(err),
			elog.String("event", env.Event),
			elog.String("eventId", env.EventID),
			elog.Any("redelivered", d.Redelivered()))
		consumeCounter.WithLabelValues(env.Event, resultRequeue).Inc()
		c.nack(d, true)
	}
}

// isPermanent 重试也不会成功的错误
func isPermanent(err error) bool {
	return errors.Is(err, ErrMalformedEnvelope) ||
		errors.Is(err, service.ErrNotFound) ||
		errors.Is(err, service.ErrValidation) ||
		errors.Is(err, service.ErrInvalidTransition)
}

func (c *Consumer) ack(d broker.Delivery) {
	if err := d.Ack(); err != nil {
		c.logger.Error("确认消息失败", elog.FieldErr(err), elog.String("messageId", d.MessageID()))
	}
}

func (c *Consumer) nack(d broker.Delivery, requeue bool) {
	if err := d.Nack(requeue); err != nil {
		c.logger.Error("拒绝消息失败",
			elog.FieldErr(err),
			elog.String("messageId", d.MessageID()),
			elog.Any("requeue", requeue))
	}
}

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

// Package mqapi 在 mq-api 之上模拟 exchange/queue 语义。
// 每个 exchange 对应一个 topic，每个 queue 对应一个消费者组，
// routing key 放在消息头里，由订阅方按照绑定关系过滤
package mqapi

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const (
	headerRoutingKey  = "x-routing-key"
	headerMessageID   = "x-message-id"
	headerContentType = "content-type"
	// 重新入队的消息只投递给这个 queue
	headerTargetQueue = "x-target-queue"
	headerRedelivered = "x-redelivered"

	requeueTimeout = 5 * time.Second
)

var errSettled = fmt.Errorf("%w: 消息已经确认过或者订阅已经关闭", broker.ErrClosed)

type Broker struct {
	q         mq.MQ
	mu        sync.RWMutex
	producers map[string]mq.Producer
	topics    map[string]struct{}
	bindings  map[string][]broker.Binding
	dlx       map[string]string
	logger    *elog.Component
}

func NewBroker(q mq.MQ) *Broker {
	return &Broker{
		q:         q,
		producers: make(map[string]mq.Producer),
		topics:    make(map[string]struct{}),
		bindings:  make(map[string][]broker.Binding),
		dlx:       make(map[string]string),
		logger:    elog.DefaultLogger,
	}
}

func (b *Broker) DeclareTopology(ctx context.Context, t broker.Topology) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ex := range t.Exchanges {
		if _, ok := b.topics[ex.Name]; ok {
			continue
		}
		if err := b.q.CreateTopic(ctx, ex.Name, 1); err != nil {
			// topic 可能已经由别的服务创建
			b.logger.Warn("创建 topic 失败", elog.String("topic", ex.Name), elog.FieldErr(err))
		}
		b.topics[ex.Name] = struct{}{}
	}
	for _, q := range t.Queues {
		if _, ok := b.bindings[q.Name]; !ok {
			b.bindings[q.Name] = nil
		}
		if q.DeadLetterExchange != "" {
			b.dlx[q.Name] = q.DeadLetterExchange
		}
	}
	for _, bd := range t.Bindings {
		if _, ok := b.bindings[bd.Queue]; !ok {
			return fmt.Errorf("绑定了未声明的 queue %s", bd.Queue)
		}
		if _, ok := b.topics[bd.Exchange]; !ok {
			return fmt.Errorf("绑定了未声明的 exchange %s", bd.Exchange)
		}
		b.bindings[bd.Queue] = append(b.bindings[bd.Queue], bd)
	}
	return nil
}

func (b *Broker) producer(exchange string) (mq.Producer, error) {
	b.mu.RLock()
	p, ok := b.producers[exchange]
	b.mu.RUnlock()
	if ok {
		return p, nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok = b.producers[exchange]; ok {
		return p, nil
	}
	p, err := b.q.Producer(exchange)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", broker.ErrClosed, err)
	}
	b.producers[exchange] = p
	return p, nil
}

func (b *Broker) Publish(ctx context.Context, exchange, routingKey string, msg broker.Message) error {
	header := make(map[string]string, len(msg.Headers)+3)
	for k, v := range msg.Headers {
		header[k] = v
	}
	header[headerRoutingKey] = routingKey
	header[headerMessageID] = msg.ID
	header[headerContentType] = msg.ContentType
	return b.produce(ctx, exchange, &mq.Message{
		Key:    []byte(routingKey),
		Value:  msg.Body,
		Header: header,
	})
}

func (b *Broker) produce(ctx context.Context, exchange string, m *mq.Message) error {
	p, err := b.producer(exchange)
	if err != nil {
		return err
	}
	_, err = p.Produce(ctx, m)
	if err != nil {
		return fmt.Errorf("向 topic=%s 发送消息失败: %w", exchange, err)
	}
	return nil
}

func (b *Broker) Subscribe(ctx context.Context, queue string) (broker.Subscription, error) {
	b.mu.RLock()
	bindings, ok := b.bindings[queue]
	dlx := b.dlx[queue]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("未声明的 queue %s", queue)
	}
	patterns := make(map[string][]string, len(bindings))
	for _, bd := range bindings {
		patterns[bd.Exchange] = append(patterns[bd.Exchange], bd.Key)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		out:       make(chan broker.Delivery),
		cancel:    cancel,
		unsettled: make(map[*delivery]struct{}),
		logger:    b.logger,
	}
	for exchange, keys := range patterns {
		// 消费者组就是 queue，同一个 queue 的多个实例分摊消息
		c, err := b.q.Consumer(exchange, queue)
		if err != nil {
			_ = sub.Close()
			return nil, fmt.Errorf("创建 topic=%s 的消费者失败: %w", exchange, err)
		}
		msgs, err := c.ConsumeChan(subCtx)
		if err != nil {
			_ = c.Close()
			_ = sub.Close()
			return nil, fmt.Errorf("订阅 topic=%s 失败: %w", exchange, err)
		}
		src := &source{
			consumer: c,
			msgs:     msgs,
			route:    route{b: b, exchange: exchange, queue: queue, dlx: dlx, keys: keys},
		}
		sub.sources = append(sub.sources, src)
		sub.wg.Add(1)
		go sub.consume(subCtx, src)
	}
	go func() {
		sub.wg.Wait()
		close(sub.out)
	}()
	return sub, nil
}

type route struct {
	b        *Broker
	exchange string
	queue    string
	dlx      string
	keys     []string
}

func (r route) accept(m *mq.Message) bool {
	if target := m.Header[headerTargetQueue]; target != "" {
		return target == r.queue
	}
	key := m.Header[headerRoutingKey]
	for _, pattern := range r.keys {
		if broker.MatchTopic(pattern, key) {
			return true
		}
	}
	return false
}

// requeue 重新投递给 queue 自己
func (r route) requeue(m *mq.Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()
	header := r.copyHeader(m)
	header[headerTargetQueue] = r.queue
	header[headerRedelivered] = "true"
	return r.b.produce(ctx, r.exchange, &mq.Message{Key: m.Key, Value: m.Value, Header: header})
}

func (r route) deadLetter(m *mq.Message) error {
	if r.dlx == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()
	header := r.copyHeader(m)
	delete(header, headerTargetQueue)
	return r.b.produce(ctx, r.dlx, &mq.Message{Key: m.Key, Value: m.Value, Header: header})
}

func (r route) copyHeader(m *mq.Message) map[string]string {
	header := make(map[string]string, len(m.Header)+2)
	for k, v := range m.Header {
		header[k] = v
	}
	return header
}

func (b *Broker) Close() error {
	return b.q.Close()
}

type source struct {
	consumer mq.Consumer
	msgs     <-chan *mq.Message
	route    route
}

// subscription mq-api 在读取的时候就推进了消费位点，
// 所以没有确认的消息和预取但还没有投递的消息在 Close 的时候重新入队
type subscription struct {
	out     chan broker.Delivery
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	sources []*source
	logger  *elog.Component

	mu        sync.Mutex
	closed    bool
	unsettled map[*delivery]struct{}
}

func (s *subscription) consume(ctx context.Context, src *source) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-src.msgs:
			if !ok {
				if ctx.Err() == nil {
					s.logger.Error("消费者已关闭", elog.String("topic", src.route.exchange))
				}
				return
			}
			if !src.route.accept(m) {
				continue
			}
			d := &delivery{sub: s, route: src.route, msg: m}
			if !s.track(d) {
				s.requeue(d)
				return
			}
			select {
			case s.out <- d:
			case <-ctx.Done():
				// 还在 unsettled 里面，Close 的时候重新入队
				return
			}
		}
	}
}

func (s *subscription) track(d *delivery) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.unsettled[d] = struct{}{}
	return true
}

// settle 返回 false 说明消息已经确认过，或者订阅已经关闭
func (s *subscription) settle(d *delivery) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.unsettled[d]; !ok {
		return false
	}
	delete(s.unsettled, d)
	return true
}

func (s *subscription) requeue(d *delivery) {
	if err := d.route.requeue(d.msg); err != nil {
		s.logger.Error("消息重新入队失败",
			elog.FieldErr(err),
			elog.String("queue", d.route.queue),
			elog.String("messageId", d.MessageID()))
	}
}

func (s *subscription) Deliveries() <-chan broker.Delivery {
	return s.out
}

func (s *subscription) Cancel() error {
	s.cancel()
	return nil
}

func (s *subscription) Close() error {
	s.cancel()
	s.wg.Wait()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	pending := make([]*delivery, 0, len(s.unsettled))
	for d := range s.unsettled {
		pending = append(pending, d)
	}
	s.unsettled = nil
	s.mu.Unlock()

	var errs []error
	for _, src := range s.sources {
		if err := src.consumer.Close(); err != nil {
			errs = append(errs, err)
		}
		// 关闭之后 msgs 也会被关闭，取出已经预取的消息
		for m := range src.msgs {
			if src.route.accept(m) {
				pending = append(pending, &delivery{sub: s, route: src.route, msg: m})
			}
		}
	}
	for _, d := range pending {
		if err := d.route.requeue(d.msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type delivery struct {
	sub   *subscription
	route route
	msg   *mq.Message
}

func (d *delivery) Body() []byte {
	return d.msg.Value
}

func (d *delivery) RoutingKey() string {
	return d.msg.Header[headerRoutingKey]
}

func (d *delivery) MessageID() string {
	return d.msg.Header[headerMessageID]
}

func (d *delivery) Redelivered() bool {
	return d.msg.Header[headerRedelivered] == "true"
}

func (d *delivery) Ack() error {
	if !d.sub.settle(d) {
		return errSettled
	}
	return nil
}

func (d *delivery) Nack(requeue bool) error {
	if !d.sub.settle(d) {
		return errSettled
	}
	if requeue {
		return d.route.requeue(d.msg)
	}
	return d.route.deadLetter(d.msg)
}

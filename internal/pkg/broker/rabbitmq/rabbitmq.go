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
package rabbitmq

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Config struct {
	URL         string        `yaml:"url"`
	Prefetch    int           `yaml:"prefetch"`
	DialTimeout time.Duration `yaml:"dialTimeout"`
	Heartbeat   time.Duration `yaml:"heartbeat"`
	// 连接名，会显示在 RabbitMQ 管理界面上
	Name string `yaml:"name"`
}

// Broker 发送消息共用一个 channel，每个订阅独占一个 channel。
// 连接断开之后 Publish 直接返回 broker.ErrClosed，并在后台重连，
// 没有发出去的事件由 outbox 补发
type Broker struct {
	cfg Config
	// 保护 conn、pubCh、closed、dialing，持有期间不做网络 IO
	mu      sync.Mutex
	conn    *amqp.Connection
	pubCh   *amqp.Channel
	closed  bool
	dialing bool
	// 串行化 pubCh 上的发送，容量为 1
	pubSem chan struct{}
	logger *elog.Component
}

// NewBroker 初次连接失败不会返回错误，只记录日志，等待后续重连
func NewBroker(cfg Config) *Broker {
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 10
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	b := &Broker{
		cfg:    cfg,
		pubSem: make(chan struct{}, 1),
		logger: elog.DefaultLogger,
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if _, err := b.connection(ctx); err != nil {
		b.logger.Warn("连接 RabbitMQ 失败，稍后重试", elog.FieldErr(err))
	}
	return b
}

// dial 握手阶段同时受 DialTimeout 和 ctx 约束
func (b *Broker) dial(ctx context.Context) (*amqp.Connection, error) {
	props := amqp.NewConnectionProperties()
	if b.cfg.Name != "" {
		props.SetClientConnectionName(b.cfg.Name)
	}
	deadline := time.Now().Add(b.cfg.DialTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	var stop func() bool
	conn, err := amqp.DialConfig(b.cfg.URL, amqp.Config{
		Heartbeat:  b.cfg.Heartbeat,
		Properties: props,
		Dial: func(network, addr string) (net.Conn, error) {
			dialer := net.Dialer{Deadline: deadline}
			c, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			// 握手完成之后 amqp 会清掉 deadline
			if err = c.SetDeadline(deadline); err != nil {
				_ = c.Close()
				return nil, err
			}
			stop = context.AfterFunc(ctx, func() {
				_ = c.SetDeadline(time.Now())
			})
			return c, nil
		},
	})
	if stop != nil && !stop() && err == nil {
		// ctx 在握手期间结束，连接的 deadline 已经被改掉了
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", broker.ErrClosed, ctx.Err())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", broker.ErrClosed, err)
	}
	return conn, nil
}

// current 返回可用的连接，没有可用连接时返回 nil
func (b *Broker) current() (*amqp.Connection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, broker.ErrClosed
	}
	if b.conn != nil && !b.conn.IsClosed() {
		return b.conn, nil
	}
	return nil, nil
}

// connection 在没有可用连接时同步建立连接，用于声明拓扑和订阅
func (b *Broker) connection(ctx context.Context) (*amqp.Connection, error) {
	conn, err := b.current()
	if err != nil || conn != nil {
		return conn, err
	}
	conn, err = b.dial(ctx)
	if err != nil {
		return nil, err
	}
	return b.install(conn), nil
}

// install 保存新建立的连接，已经有可用连接的时候关闭 conn
func (b *Broker) install(conn *amqp.Connection) *amqp.Connection {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		_ = conn.Close()
		return conn
	}
	if b.conn != nil && !b.conn.IsClosed() {
		_ = conn.Close()
		return b.conn
	}
	b.conn = conn
	b.pubCh = nil
	return conn
}

// reconnect 在后台重连，同一时间只有一个重连
func (b *Broker) reconnect() {
	b.mu.Lock()
	if b.closed || b.dialing {
		b.mu.Unlock()
		return
	}
	b.dialing = true
	b.mu.Unlock()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), b.cfg.DialTimeout)
		defer cancel()
		conn, err := b.dial(ctx)
		if err != nil {
			b.logger.Warn("重连 RabbitMQ 失败", elog.FieldErr(err))
		} else {
			b.install(conn)
			b.logger.Info("重连 RabbitMQ 成功")
		}
		b.mu.Lock()
		b.dialing = false
		b.mu.Unlock()
	}()
}

func (b *Broker) newChannel(ctx context.Context) (*amqp.Channel, error) {
	conn, err := b.connection(ctx)
	if err != nil {
		return nil, err
	}
	return conn.Channel()
}

func (b *Broker) DeclareTopology(ctx context.Context, t broker.Topology) error {
	ch, err := b.newChannel(ctx)
	if err != nil {
		return err
	}
	defer ch.Close()
	for _, ex := range t.Exchanges {
		if err = ch.ExchangeDeclare(ex.Name, ex.Kind, true, false, false, false, nil); err != nil {
			return fmt.Errorf("声明 exchange %s 失败: %w", ex.Name, err)
		}
	}
	for _, q := range t.Queues {
		var args amqp.Table
		if q.DeadLetterExchange != "" {
			args = amqp.Table{"x-dead-letter-exchange": q.DeadLetterExchange}
		}
		if _, err = ch.QueueDeclare(q.Name, true, false, false, false, args); err != nil {
			return fmt.Errorf("声明 queue %s 失败: %w", q.Name, err)
		}
	}
	for _, bd := range t.Bindings {
		if err = ch.QueueBind(bd.Queue, bd.Key, bd.Exchange, false, nil); err != nil {
			return fmt.Errorf("绑定 %s -> %s(%s) 失败: %w", bd.Exchange, bd.Queue, bd.Key, err)
		}
	}
	return ctx.Err()
}

// publishChannel 调用方需要持有 pubSem
func (b *Broker) publishChannel() (*amqp.Channel, error) {
	b.mu.Lock()
	ch := b.pubCh
	b.mu.Unlock()
	if ch != nil && !ch.IsClosed() {
		return ch, nil
	}
	conn, err := b.current()
	if err != nil {
		return nil, err
	}
	if conn == nil {
		b.reconnect()
		return nil, broker.ErrClosed
	}
	ch, err = conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", broker.ErrClosed, err)
	}
	b.mu.Lock()
	b.pubCh = ch
	b.mu.Unlock()
	return ch, nil
}

func (b *Broker) Publish(ctx context.Context, exchange, routingKey string, msg broker.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case b.pubSem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() {
		<-b.pubSem
	}()
	ch, err := b.publishChannel()
	if err != nil {
		return err
	}
	var headers amqp.Table
	if len(msg.Headers) > 0 {
		headers = make(amqp.Table, len(msg.Headers))
		for k, v := range msg.Headers {
			headers[k] = v
		}
	}
	err = ch.PublishWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
		Headers:      headers,
		ContentType:  msg.ContentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Timestamp:    msg.Timestamp,
		Body:         msg.Body,
	})
	if err != nil {
		// 下次重新打开 channel
		_ = ch.Close()
		b.mu.Lock()
		if b.pubCh == ch {
			b.pubCh = nil
		}
		b.mu.Unlock()
		return fmt.Errorf("向 exchange=%s key=%s 发送消息失败: %w", exchange, routingKey, err)
	}
	return nil
}

func (b *Broker) Subscribe(ctx context.Context, queue string) (broker.Subscription, error) {
	ch, err := b.newChannel(ctx)
	if err != nil {
		return nil, err
	}
	if err = ch.Qos(b.cfg.Prefetch, 0, false); err != nil {
		_ = ch.Close()
		return nil, err
	}
	tag := fmt.Sprintf("%s-%s", queue, uuid.NewString())
	src, err := ch.ConsumeWithContext(ctx, queue, tag, false, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("订阅 queue %s 失败: %w", queue, err)
	}
	sub := newSubscription(ch, tag)
	go sub.forward(src)
	return sub, nil
}

func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	if b.conn == nil || b.conn.IsClosed() {
		return nil
	}
	return b.conn.Close()
}

type subscription struct {
	ch   *amqp.Channel
	tag  string
	out  chan broker.Delivery
	done chan struct{}
	once sync.Once
}

func newSubscription(ch *amqp.Channel, tag string) *subscription {
	return &subscription{
		ch:   ch,
		tag:  tag,
		out:  make(chan broker.Delivery),
		done: make(chan struct{}),
	}
}

// forward 在没有人读取 out 的时候，stop 之后也能退出。
// 没有转发出去的消息在 channel 关闭之后由 RabbitMQ 重新投递
func (s *subscription) forward(src <-chan amqp.Delivery) {
	defer close(s.out)
	for d := range src {
		select {
		case s.out <- delivery{d: d}:
		case <-s.done:
			return
		}
	}
}

func (s *subscription) stop() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *subscription) Deliveries() <-chan broker.Delivery {
	return s.out
}

// Cancel 之后缓冲在 forward 中的消息不再转发
func (s *subscription) Cancel() error {
	s.stop()
	if s.ch == nil || s.ch.IsClosed() {
		return nil
	}
	return s.ch.Cancel(s.tag, false)
}

func (s *subscription) Close() error {
	s.stop()
	if s.ch == nil || s.ch.IsClosed() {
		return nil
	}
	return s.ch.Close()
}

type delivery struct {
	d amqp.Delivery
}

func (d delivery) Body() []byte {
	return d.d.Body
}

func (d delivery) RoutingKey() string {
	return d.d.RoutingKey
}

func (d delivery) MessageID() string {
	return d.d.MessageId
}

func (d delivery) Redelivered() bool {
	return d.d.Redelivered
}

func (d delivery) Ack() error {
	return d.d.Ack(false)
}

func (d delivery) Nack(requeue bool) error {
	return d.d.Nack(false, requeue)
}

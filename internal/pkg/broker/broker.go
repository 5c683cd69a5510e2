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

// Package broker 抽象了基于 exchange + routing key 的消息代理。
// 生产环境使用 rabbitmq 实现，mqapi 实现基于 ecodeclub/mq-api，可以接 kafka 或者内存队列。
package broker

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrClosed = errors.New("broker: 连接不可用")

const (
	ExchangeKindTopic  = "topic"
	ExchangeKindDirect = "direct"
	ExchangeKindFanout = "fanout"
)

// Message 发送的消息均为持久化消息
type Message struct {
	ID          string
	Body        []byte
	ContentType string
	Headers     map[string]string
	Timestamp   time.Time
}

type Exchange struct {
	Name string
	Kind string
}

type Queue struct {
	Name string
	// 拒绝且不重新入队的消息会被投递到这个 exchange
	DeadLetterExchange string
}

type Binding struct {
	Queue    string
	Exchange string
	Key      string
}

// Topology 声明是幂等的，所有 exchange 与 queue 都是 durable 的
type Topology struct {
	Exchanges []Exchange
	Queues    []Queue
	Bindings  []Binding
}

type Delivery interface {
	Body() []byte
	RoutingKey() string
	MessageID() string
	Redelivered() bool
	Ack() error
	// Nack requeue 为 false 时消息进入死信队列
	Nack(requeue bool) error
}

type Subscription interface {
	// Deliveries 在订阅被取消或者连接断开之后关闭
	Deliveries() <-chan Delivery
	// Cancel 停止接收新消息，已经收到的消息仍然可以 Ack
	Cancel() error
	// Close 释放订阅占用的资源，之后 Ack 会失败
	Close() error
}

type Broker interface {
	DeclareTopology(ctx context.Context, t Topology) error
	Publish(ctx context.Context, exchange, routingKey string, msg Message) error
	Subscribe(ctx context.Context, queue string) (Subscription, error)
	io.Closer
}

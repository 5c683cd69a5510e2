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
	"sync"

	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
)

type publishedMessage struct {
	exchange   string
	routingKey string
	msg        broker.Message
}

// fakeBroker 在内存中记录发送的消息，Subscribe 返回预先准备好的订阅
type fakeBroker struct {
	mu           sync.Mutex
	published    []publishedMessage
	publishErr   error
	subscribeErr []error
	subs         chan *fakeSubscription
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{subs: make(chan *fakeSubscription, 4)}
}

func (f *fakeBroker) DeclareTopology(ctx context.Context, t broker.Topology) error {
	return nil
}

func (f *fakeBroker) Publish(ctx context.Context, exchange, routingKey string, msg broker.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, publishedMessage{exchange: exchange, routingKey: routingKey, msg: msg})
	return nil
}

func (f *fakeBroker) Subscribe(ctx context.Context, queue string) (broker.Subscription, error) {
	f.mu.Lock()
	if len(f.subscribeErr) > 0 {
		err := f.subscribeErr[0]
		f.subscribeErr = f.subscribeErr[1:]
		f.mu.Unlock()
		return nil, err
	}
	f.mu.Unlock()
	select {
	case sub := <-f.subs:
		return sub, nil
	default:
		return nil, errors.New("没有可用的订阅")
	}
}

func (f *fakeBroker) Close() error {
	return nil
}

type fakeSubscription struct {
	ch        chan broker.Delivery
	mu        sync.Mutex
	cancelled bool
	closed    bool
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{ch: make(chan broker.Delivery, 16)}
}

func (s *fakeSubscription) Deliveries() <-chan broker.Delivery {
	return s.ch
}

func (s *fakeSubscription) Cancel() error {
	s.mu.Lock()
	s.cancelled = true
	s.mu.Unlock()
	return nil
}

func (s *fakeSubscription) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *fakeSubscription) state() (cancelled, closed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled, s.closed
}

const (
	outcomeAck     = "ack"
	outcomeRequeue = "requeue"
	outcomeDead    = "dead"
)

// fakeDelivery 把确认结果写入 outcomes
type fakeDelivery struct {
	body     []byte
	key      string
	id       string
	outcomes chan string
}

func newFakeDelivery(key, body string) *fakeDelivery {
	return &fakeDelivery{
		body:     []byte(body),
		key:      key,
		id:       key + "-msg",
		outcomes: make(chan string, 1),
	}
}

func (d *fakeDelivery) Body() []byte {
	return d.body
}

func (d *fakeDelivery) RoutingKey() string {
	return d.key
}

func (d *fakeDelivery) MessageID() string {
	return d.id
}

func (d *fakeDelivery) Redelivered() bool {
	return false
}

func (d *fakeDelivery) Ack() error {
	d.outcomes <- outcomeAck
	return nil
}

func (d *fakeDelivery) Nack(requeue bool) error {
	if requeue {
		d.outcomes <- outcomeRequeue
	} else {
		d.outcomes <- outcomeDead
	}
	return nil
}

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

package mqapi

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BrokerTestSuite struct {
	suite.Suite
	b *Broker
}

func TestBroker(t *testing.T) {
	suite.Run(t, new(BrokerTestSuite))
}

func (s *BrokerTestSuite) SetupTest() {
	s.b = NewBroker(memory.NewMQ())
	err := s.b.DeclareTopology(context.Background(), broker.Topology{
		Exchanges: []broker.Exchange{
			{Name: "order.events", Kind: broker.ExchangeKindTopic},
			{Name: "dlx.order.events", Kind: broker.ExchangeKindTopic},
		},
		Queues: []broker.Queue{
			{Name: "order.created", DeadLetterExchange: "dlx.order.events"},
			{Name: "order.all"},
			{Name: "order.dlq"},
		},
		Bindings: []broker.Binding{
			{Queue: "order.created", Exchange: "order.events", Key: "order.created"},
			{Queue: "order.all", Exchange: "order.events", Key: "order.#"},
			{Queue: "order.dlq", Exchange: "dlx.order.events", Key: "#"},
		},
	})
	s.Require().NoError(err)
}

func (s *BrokerTestSuite) TearDownTest() {
	_ = s.b.Close()
}

func (s *BrokerTestSuite) subscribe(queue string) broker.Subscription {
	sub, err := s.b.Subscribe(context.Background(), queue)
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		_ = sub.Cancel()
	})
	return sub
}

func (s *BrokerTestSuite) publish(key, body string) {
	err := s.b.Publish(context.Background(), "order.events", key, broker.Message{
		ID:          key + "-" + body,
		Body:        []byte(body),
		ContentType: "application/json",
	})
	s.Require().NoError(err)
}

func receive(t *testing.T, sub broker.Subscription) broker.Delivery {
	return receiveWithin(t, sub, 3*time.Second)
}

func receiveWithin(t *testing.T, sub broker.Subscription, timeout time.Duration) broker.Delivery {
	select {
	case d, ok := <-sub.Deliveries():
		require.True(t, ok)
		return d
	case <-time.After(timeout):
		require.FailNow(t, "等待消息超时")
		return nil
	}
}

func assertNothing(t *testing.T, sub broker.Subscription) {
	select {
	case d := <-sub.Deliveries():
		assert.Failf(t, "不应该收到消息", "routingKey=%s", d.RoutingKey())
	case <-time.After(200 * time.Millisecond):
	}
}

func (s *BrokerTestSuite) TestRouting() {
	t := s.T()
	created := s.subscribe("order.created")
	all := s.subscribe("order.all")

	s.publish("order.created", `{"n":1}`)
	s.publish("order.updated", `{"n":2}`)

	d := receive(t, created)
	assert.Equal(t, "order.created", d.RoutingKey())
	assert.Equal(t, `{"n":1}`, string(d.Body()))
	assert.Equal(t, `order.created-{"n":1}`, d.MessageID())
	assert.False(t, d.Redelivered())
	assert.NoError(t, d.Ack())
	assertNothing(t, created)

	keys := []string{receive(t, all).RoutingKey(), receive(t, all).RoutingKey()}
	assert.ElementsMatch(t, []string{"order.created", "order.updated"}, keys)
}

func (s *BrokerTestSuite) TestNack() {
	t := s.T()
	created := s.subscribe("order.created")
	all := s.subscribe("order.all")
	dlq := s.subscribe("order.dlq")

	s.publish("order.created", "retry-me")
	_ = receive(t, all)

	d := receive(t, created)
	require.NoError(t, d.Nack(true))
	redelivered := receive(t, created)
	assert.True(t, redelivered.Redelivered())
	assert.Equal(t, "retry-me", string(redelivered.Body()))
	// 重新入队的消息只投递给原来的 queue
	assertNothing(t, all)

	require.NoError(t, redelivered.Nack(false))
	dead := receive(t, dlq)
	assert.Equal(t, "retry-me", string(dead.Body()))
	assert.Equal(t, "order.created", dead.RoutingKey())
}

func (s *BrokerTestSuite) TestCancel() {
	sub := s.subscribe("order.created")
	require.NoError(s.T(), sub.Cancel())
	select {
	case _, ok := <-sub.Deliveries():
		assert.False(s.T(), ok)
	case <-time.After(3 * time.Second):
		s.T().Fatal("取消订阅之后应该关闭 Deliveries")
	}
}

func (s *BrokerTestSuite) TestCloseRequeuesUnacked() {
	t := s.T()
	sub, err := s.b.Subscribe(context.Background(), "order.created")
	require.NoError(t, err)

	s.publish("order.created", "in-flight")
	d := receive(t, sub)
	assert.False(t, d.Redelivered())
	// 没有确认就关闭了订阅，例如进程在处理中途退出
	require.NoError(t, sub.Close())
	assert.ErrorIs(t, d.Ack(), broker.ErrClosed)

	again := s.subscribe("order.created")
	// 新的消费者加入消费组之后需要重新分配分区
	redelivered := receiveWithin(t, again, 10*time.Second)
	assert.Equal(t, "in-flight", string(redelivered.Body()))
	assert.True(t, redelivered.Redelivered())
	assert.NoError(t, redelivered.Ack())
	assert.ErrorIs(t, redelivered.Ack(), broker.ErrClosed)
}

func (s *BrokerTestSuite) TestSubscribeUnknownQueue() {
	_, err := s.b.Subscribe(context.Background(), "nope")
	assert.Error(s.T(), err)
}

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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/event"
	"github.com/ecodeclub/cloudcart/internal/order/internal/repository/dao"
	"github.com/ecodeclub/cloudcart/internal/order/internal/web"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *OrderModuleTestSuite) publish(exchange, eventType, eventID string, data any) {
	body, err := json.Marshal(map[string]any{
		"eventId":   eventID,
		"event":     eventType,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "payment-service",
	})
	require.NoError(s.T(), err)
	err = s.b.Publish(context.Background(), exchange, eventType, broker.Message{
		ID:          eventID,
		Body:        body,
		ContentType: "application/json",
	})
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) waitPayment(id int64, status string) {
	assert.Eventually(s.T(), func() bool {
		var o dao.Order
		err := s.db.Where("id = ?", id).First(&o).Error
		return err == nil && o.PaymentStatus == status
	}, 5*time.Second, 50*time.Millisecond)
}

func (s *OrderModuleTestSuite) processed(eventID string) int64 {
	var cnt int64
	err := s.db.Model(&dao.ProcessedEvent{}).Where("event_id = ?", eventID).Count(&cnt).Error
	require.NoError(s.T(), err)
	return cnt
}

func (s *OrderModuleTestSuite) TestConsumer_PaymentCompleted() {
	t := s.T()
	o := s.createOrder(buyer)
	data := map[string]any{"orderId": strconv.FormatInt(o.ID, 10), "paymentId": "pay-1"}
	s.publish(event.ExchangePaymentEvents, "payment.completed", "evt-pay-1", data)
	// 重复投递
	s.publish(event.ExchangePaymentEvents, "payment.completed", "evt-pay-1", data)
	s.waitPayment(o.ID, "paid")

	assert.Eventually(t, func() bool {
		return s.processed("evt-pay-1") == 1
	}, 3*time.Second, 50*time.Millisecond)

	// 已经支付的订单不会因为失败事件变化
	s.publish(event.ExchangePaymentEvents, "payment.failed", "evt-pay-2", data)
	assert.Eventually(t, func() bool {
		return s.processed("evt-pay-2") == 1
	}, 3*time.Second, 50*time.Millisecond)
	s.waitPayment(o.ID, "paid")
}

func (s *OrderModuleTestSuite) TestConsumer_PaymentFailed() {
	o := s.createOrder(buyer)
	s.publish(event.ExchangePaymentEvents, "payment.failed", "evt-fail-1", map[string]any{
		"orderId":   strconv.FormatInt(o.ID, 10),
		"paymentId": "pay-2",
	})
	s.waitPayment(o.ID, "failed")
}

func (s *OrderModuleTestSuite) TestConsumer_UserDeleted() {
	t := s.T()
	pending := s.createOrder(buyer)
	shipped := s.createOrder(buyer)
	for _, status := range []string{"confirmed", "processing", "shipped"} {
		res := s.updateStatus(web.UpdateStatusReq{ID: shipped.ID, Status: status})
		require.Equal(t, 0, res.Code, res.Msg)
	}
	untouched := s.createOrder(otherUser)

	s.publish(event.ExchangeUserEvents, "user.deleted", "evt-user-1", map[string]any{
		"userId": buyer.UserID,
		"email":  buyer.Email,
	})

	status := func(id int64) string {
		var o dao.Order
		require.NoError(t, s.db.Where("id = ?", id).First(&o).Error)
		return o.Status
	}
	assert.Eventually(t, func() bool {
		return status(pending.ID) == "cancelled"
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, "shipped", status(shipped.ID))
	assert.Equal(t, "pending", status(untouched.ID))

	var h dao.OrderStatusHistory
	err := s.db.Where("order_id = ? AND status = ?", pending.ID, "cancelled").First(&h).Error
	require.NoError(t, err)
	assert.Equal(t, "User account deleted", h.Note)
}

func (s *OrderModuleTestSuite) TestConsumer_MalformedGoesToDeadLetter() {
	t := s.T()
	dlq, err := s.b.Subscribe(context.Background(), event.QueueDeadLetter)
	require.NoError(t, err)
	defer dlq.Close()

	err = s.b.Publish(context.Background(), event.ExchangePaymentEvents, "payment.completed", broker.Message{
		ID:          "evt-bad-1",
		Body:        []byte(`{"event":"payment.completed"`),
		ContentType: "application/json",
	})
	require.NoError(t, err)

	timeout := time.After(5 * time.Second)
	for {
		select {
		case d, ok := <-dlq.Deliveries():
			require.True(t, ok)
			require.NoError(t, d.Ack())
			if d.MessageID() == "evt-bad-1" {
				assert.Equal(t, `{"event":"payment.completed"`, string(d.Body()))
				return
			}
		case <-timeout:
			require.FailNow(t, "消息没有进入死信队列")
		}
	}
}

func (s *OrderModuleTestSuite) TestJob_RelayOutbox() {
	t := s.T()
	o := s.createOrder(buyer)
	// 模拟发送失败
	err := s.db.Model(&dao.OutboxEvent{}).Where("aggregate_id = ?", o.ID).
		Updates(map[string]any{"status": 1, "ctime": time.Now().Add(-time.Minute).UnixMilli()}).Error
	require.NoError(t, err)

	sub, err := s.b.Subscribe(context.Background(), event.QueueOrderCreated)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, s.module.RelayOutboxJob.Run(context.Background()))

	env := s.receive(sub, o.OrderNumber)
	assert.Equal(t, "order.created", env.Event)

	var cnt int64
	err = s.db.Model(&dao.OutboxEvent{}).Where("status = ?", 1).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

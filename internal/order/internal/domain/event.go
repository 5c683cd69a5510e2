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

package domain

import (
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
)

const (
	EventOrderCreated     = "order.created"
	EventOrderUpdated     = "order.updated"
	EventPaymentCompleted = "payment.completed"
	EventPaymentFailed    = "payment.failed"
	EventUserCreated      = "user.created"
	EventUserUpdated      = "user.updated"
	EventUserDeleted      = "user.deleted"
)

// Event 待发布的领域事件，Payload 是 JSON 编码后的 data
type Event struct {
	ID          string
	Type        string
	AggregateID int64
	Payload     []byte
	Ctime       int64
}

type EventItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	TotalPrice  int64  `json:"totalPrice"`
}

type OrderCreatedData struct {
	OrderID     int64       `json:"orderId,string"`
	OrderNumber string      `json:"orderNumber"`
	UserID      string      `json:"userId"`
	TotalAmount int64       `json:"totalAmount"`
	Items       []EventItem `json:"items"`
}

type OrderUpdatedData struct {
	OrderID     int64  `json:"orderId,string"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
}

type PaymentEventData struct {
	OrderID   int64  `json:"orderId,string"`
	PaymentID string `json:"paymentId"`
}

type UserEventData struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

func newEvent(typ string, aggregateID int64, data any, now int64) (Event, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("序列化事件 %s 失败: %w", typ, err)
	}
	return Event{
		ID:          uuid.NewString(),
		Type:        typ,
		AggregateID: aggregateID,
		Payload:     payload,
		Ctime:       now,
	}, nil
}

func NewOrderCreatedEvent(o Order, now int64) (Event, error) {
	return newEvent(EventOrderCreated, o.ID, OrderCreatedData{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		Items: slice.Map(o.Items, func(idx int, src OrderItem) EventItem {
			return EventItem{
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
				TotalPrice:  src.TotalPrice,
			}
		}),
	}, now)
}

func NewOrderUpdatedEvent(o Order, now int64) (Event, error) {
	return newEvent(EventOrderUpdated, o.ID, OrderUpdatedData{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status.String(),
	}, now)
}

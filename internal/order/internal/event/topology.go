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
	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
)

const (
	ExchangeOrderEvents   = "order.events"
	ExchangeUserEvents    = "user.events"
	ExchangePaymentEvents = "payment.events"
	ExchangeDeadLetter    = "dlx.order.events"

	QueueOrderCreated     = "order.created"
	QueueOrderUpdated     = "order.updated"
	QueueOrderStockUpdate = "order.stock.update"
	// QueueInbound 订单服务自己消费的 queue
	QueueInbound    = "order.user.events"
	QueueDeadLetter = "order.user.events.dlq"
)

// Topology 声明订单服务用到的 exchange、queue 和绑定关系，重复声明是幂等的
func Topology() broker.Topology {
	return broker.Topology{
		Exchanges: []broker.Exchange{
			{Name: ExchangeOrderEvents, Kind: broker.ExchangeKindTopic},
			{Name: ExchangeUserEvents, Kind: broker.ExchangeKindTopic},
			{Name: ExchangePaymentEvents, Kind: broker.ExchangeKindTopic},
			{Name: ExchangeDeadLetter, Kind: broker.ExchangeKindTopic},
		},
		Queues: []broker.Queue{
			{Name: QueueOrderCreated},
			{Name: QueueOrderUpdated},
			{Name: QueueOrderStockUpdate},
			{Name: QueueInbound, DeadLetterExchange: ExchangeDeadLetter},
			{Name: QueueDeadLetter},
		},
		Bindings: []broker.Binding{
			{Queue: QueueOrderCreated, Exchange: ExchangeOrderEvents, Key: domain.EventOrderCreated},
			{Queue: QueueOrderUpdated, Exchange: ExchangeOrderEvents, Key: domain.EventOrderUpdated},
			{Queue: QueueInbound, Exchange: ExchangeUserEvents, Key: "user.*"},
			{Queue: QueueInbound, Exchange: ExchangePaymentEvents, Key: "payment.*"},
			{Queue: QueueDeadLetter, Exchange: ExchangeDeadLetter, Key: "#"},
		},
	}
}

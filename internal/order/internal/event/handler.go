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
	"fmt"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 处理一种入站事件，返回 nil 之后消息才会被确认
type Handler func(ctx context.Context, env Envelope) error

func NewHandlers(svc service.Service) map[string]Handler {
	logger := elog.DefaultLogger
	logOnly := func(ctx context.Context, env Envelope) error {
		var data domain.UserEventData
		if err := env.UnmarshalData(&data); err != nil {
			return err
		}
		logger.Info("收到用户事件",
			elog.String("event", env.Event),
			elog.String("userId", data.UserID),
			elog.String("service", env.Service))
		return nil
	}
	return map[string]Handler{
		domain.EventPaymentCompleted: func(ctx context.Context, env Envelope) error {
			orderID, err := paymentOrderID(env)
			if err != nil {
				return err
			}
			return svc.MarkPaymentCompleted(ctx, env.EventID, orderID)
		},
		domain.EventPaymentFailed: func(ctx context.Context, env Envelope) error {
			orderID, err := paymentOrderID(env)
			if err != nil {
				return err
			}
			return svc.MarkPaymentFailed(ctx, env.EventID, orderID)
		},
		domain.EventUserDeleted: func(ctx context.Context, env Envelope) error {
			var data domain.UserEventData
			if err := env.UnmarshalData(&data); err != nil {
				return err
			}
			if data.UserID == "" {
				return fmt.Errorf("%w: 缺少 userId", ErrMalformedEnvelope)
			}
			return svc.CancelUserOrders(ctx, env.EventID, data.UserID)
		},
		domain.EventUserCreated: logOnly,
		domain.EventUserUpdated: logOnly,
	}
}

func paymentOrderID(env Envelope) (int64, error) {
	var data domain.PaymentEventData
	if err := env.UnmarshalData(&data); err != nil {
		return 0, err
	}
	if data.OrderID <= 0 {
		return 0, fmt.Errorf("%w: 缺少 orderId", ErrMalformedEnvelope)
	}
	return data.OrderID, nil
}

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

package service

import (
	"context"
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

const userDeletedNote = "User account deleted"

func (s *service) MarkPaymentCompleted(ctx context.Context, eventID string, orderID int64) error {
	return s.updatePayment(ctx, eventID, domain.EventPaymentCompleted, orderID, (*domain.Order).MarkPaid)
}

func (s *service) MarkPaymentFailed(ctx context.Context, eventID string, orderID int64) error {
	return s.updatePayment(ctx, eventID, domain.EventPaymentFailed, orderID, (*domain.Order).MarkPaymentFailed)
}

func (s *service) updatePayment(ctx context.Context, eventID, eventType string, orderID int64,
	mark func(o *domain.Order, now int64) bool) error {
	err := s.repo.ApplyOnce(ctx, eventID, eventType, func(repo repository.OrderRepository) error {
		order, err := repo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !mark(&order, time.Now().UnixMilli()) {
			s.logger.Info("支付状态无需变更",
				elog.Int64("orderId", orderID),
				elog.String("event", eventType),
				elog.String("paymentStatus", order.PaymentStatus.String()))
			return nil
		}
		_, err = repo.SavePaymentStatus(ctx, order, order.Version)
		return err
	})
	return wrapStoreErr(err)
}

// CancelUserOrders 取消用户所有尚未发货的订单，事件在事务提交之后发送
func (s *service) CancelUserOrders(ctx context.Context, eventID string, userID string) error {
	var cancellable []domain.OrderStatus
	for _, st := range domain.OrderStatuses {
		if st.CanTransitionTo(domain.StatusCancelled) {
			cancellable = append(cancellable, st)
		}
	}
	var events []domain.Event
	err := s.repo.ApplyOnce(ctx, eventID, domain.EventUserDeleted, func(repo repository.OrderRepository) error {
		orders, err := repo.FindByUserAndStatuses(ctx, userID, cancellable)
		if err != nil {
			return err
		}
		for _, o := range orders {
			version := o.Version
			cancelled, evt, err := s.transition(o, domain.StatusCancelled, userDeletedNote)
			if err != nil {
				return err
			}
			if _, err = repo.SaveTransition(ctx, cancelled, version, evt); err != nil {
				return err
			}
			events = append(events, evt)
		}
		return nil
	})
	if err != nil {
		return wrapStoreErr(err)
	}
	s.logger.Info("用户注销，取消订单",
		elog.String("userId", userID),
		elog.Int("cancelled", len(events)))
	for _, evt := range events {
		s.publisher.Publish(ctx, evt)
	}
	return nil
}

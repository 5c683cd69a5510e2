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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// 订单号冲突时最多尝试的次数
const maxOrderNumberAttempts = 3

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go -typed Service
type Service interface {
	CreateOrder(ctx context.Context, params domain.NewOrderParams) (domain.Order, error)
	// UpdateStatus expectedVersion 为 0 时不校验版本号
	UpdateStatus(ctx context.Context, id int64, target domain.OrderStatus, note string, expectedVersion int64) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter, page domain.Page) ([]domain.Order, int64, error)
	Summary(ctx context.Context) (domain.Summary, error)

	// 入站事件，重复的 eventID 返回 ErrEventAlreadyApplied
	MarkPaymentCompleted(ctx context.Context, eventID string, orderID int64) error
	MarkPaymentFailed(ctx context.Context, eventID string, orderID int64) error
	CancelUserOrders(ctx context.Context, eventID string, userID string) error

	// ListUnsentEvents 返回 before 之前创建但是还没有发送成功的事件
	ListUnsentEvents(ctx context.Context, before int64, limit int) ([]domain.Event, error)
}

type service struct {
	repo      repository.OrderRepository
	publisher EventPublisher
	pricer    domain.Pricer
	ids       IDGenerator
	numbers   OrderNumberGenerator
	logger    *elog.Component
}

func NewService(repo repository.OrderRepository,
	publisher EventPublisher,
	pricer domain.Pricer,
	ids IDGenerator,
	numbers OrderNumberGenerator) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		pricer:    pricer,
		ids:       ids,
		numbers:   numbers,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) CreateOrder(ctx context.Context, params domain.NewOrderParams) (domain.Order, error) {
	now := time.Now().UnixMilli()
	order, err := domain.NewOrder(params, s.pricer, now)
	if err != nil {
		return domain.Order{}, err
	}
	for i := 0; i < maxOrderNumberAttempts; i++ {
		order.ID = s.ids.Generate()
		order.OrderNumber, err = s.numbers.Generate(order.ID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("%w: 生成订单号失败: %w", ErrInternal, err)
		}
		evt, err1 := domain.NewOrderCreatedEvent(order, now)
		if err1 != nil {
			return domain.Order{}, fmt.Errorf("%w: %w", ErrInternal, err1)
		}
		err = s.repo.Create(ctx, order, evt)
		if errors.Is(err, repository.ErrDuplicatedOrderNumber) {
			s.logger.Warn("订单号冲突，重新生成", elog.String("orderNumber", order.OrderNumber))
			continue
		}
		if err != nil {
			return domain.Order{}, wrapStoreErr(err)
		}
		s.publisher.Publish(ctx, evt)
		return order, nil
	}
	return domain.Order{}, wrapStoreErr(err)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, target domain.OrderStatus, note string, expectedVersion int64) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, wrapStoreErr(err)
	}
	if expectedVersion != 0 && expectedVersion != order.Version {
		return domain.Order{}, fmt.Errorf("%w: 期望版本 %d, 当前版本 %d", ErrConflict, expectedVersion, order.Version)
	}
	order, evt, err := s.transition(order, target, note)
	if err != nil {
		return domain.Order{}, err
	}
	order, err = s.repo.SaveTransition(ctx, order, order.Version, evt)
	if err != nil {
		return domain.Order{}, wrapStoreErr(err)
	}
	s.publisher.Publish(ctx, evt)
	return order, nil
}

// transition 只修改内存中的订单，不修改版本号
func (s *service) transition(order domain.Order, target domain.OrderStatus, note string) (domain.Order, domain.Event, error) {
	now := time.Now().UnixMilli()
	if err := order.TransitionTo(target, note, now); err != nil {
		return domain.Order{}, domain.Event{}, err
	}
	evt, err := domain.NewOrderUpdatedEvent(order, now)
	if err != nil {
		return domain.Order{}, domain.Event{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return order, evt, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	return order, wrapStoreErr(err)
}

func (s *service) FindByOrderNumber(ctx context.Context, orderNumber string) (domain.Order, error) {
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	return order, wrapStoreErr(err)
}

func (s *service) ListOrders(ctx context.Context, filter domain.OrderFilter, page domain.Page) ([]domain.Order, int64, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, fmt.Errorf("%w: 未知的订单状态 %q", ErrValidation, filter.Status)
	}
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.List(ctx, filter, page.Offset(), page.Limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, wrapStoreErr(err)
	}
	return orders, total, nil
}

func (s *service) ListUnsentEvents(ctx context.Context, before int64, limit int) ([]domain.Event, error) {
	events, err := s.repo.FindPendingEvents(ctx, before, limit)
	return events, wrapStoreErr(err)
}

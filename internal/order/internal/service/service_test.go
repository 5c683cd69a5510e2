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
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/cloudcart/internal/order/internal/repository/mocks"
	svcmocks "github.com/ecodeclub/cloudcart/internal/order/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type idFunc func() int64

func (f idFunc) Generate() int64 {
	return f()
}

type numberFunc func(id int64) (string, error)

func (f numberFunc) Generate(id int64) (string, error) {
	return f(id)
}

func sequentialIDs() IDGenerator {
	var id int64
	return idFunc(func() int64 {
		id++
		return id
	})
}

func fixedNumbers() OrderNumberGenerator {
	return numberFunc(func(id int64) (string, error) {
		return fmt.Sprintf("ORD-20240101-%04d-ABCDEFGH", id), nil
	})
}

func newOrderParams() domain.NewOrderParams {
	return domain.NewOrderParams{
		UserID: "u-1",
		Items: []domain.OrderItem{
			{ProductID: "p1", SKU: "sku-1", ProductName: "Widget", Quantity: 2, UnitPrice: 1000},
		},
		ShippingAddress: domain.Address{
			Street:  "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
			Country: "US",
		},
		PaymentMethod: domain.PaymentMethodCreditCard,
	}
}

func existingOrder(status domain.OrderStatus, version int64) domain.Order {
	return domain.Order{
		ID:            1,
		OrderNumber:   "ORD-20240101-0001-ABCDEFGH",
		UserID:        "u-1",
		Status:        status,
		PaymentStatus: domain.PaymentStatusPending,
		StatusHistory: []domain.StatusChange{{Status: status, Note: "Order created", Ctime: 1}},
		Version:       version,
		Ctime:         1,
		Utime:         1,
	}
}

func TestService_CreateOrder(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher)
		params  domain.NewOrderParams
		wantErr error
		after   func(t *testing.T, o domain.Order)
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				pub := svcmocks.NewMockEventPublisher(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order, evt domain.Event) error {
						assert.Equal(t, int64(1), o.ID)
						assert.Equal(t, domain.EventOrderCreated, evt.Type)
						assert.Equal(t, o.ID, evt.AggregateID)
						return nil
					})
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Do(func(ctx context.Context, evt domain.Event) {
						assert.Equal(t, domain.EventOrderCreated, evt.Type)
					})
				return repo, pub
			},
			params: newOrderParams(),
			after: func(t *testing.T, o domain.Order) {
				assert.Equal(t, int64(1), o.ID)
				assert.Equal(t, "ORD-20240101-0001-ABCDEFGH", o.OrderNumber)
				assert.Equal(t, domain.StatusPending, o.Status)
				assert.Equal(t, int64(3159), o.TotalAmount)
				assert.Equal(t, int64(1), o.Version)
			},
		},
		{
			name: "订单号冲突后重试成功",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				pub := svcmocks.NewMockEventPublisher(ctrl)
				gomock.InOrder(
					repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(repository.ErrDuplicatedOrderNumber),
					repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(nil),
				)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)
				return repo, pub
			},
			params: newOrderParams(),
			after: func(t *testing.T, o domain.Order) {
				assert.Equal(t, int64(2), o.ID)
				assert.Equal(t, "ORD-20240101-0002-ABCDEFGH", o.OrderNumber)
			},
		},
		{
			name: "订单号一直冲突",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				pub := svcmocks.NewMockEventPublisher(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrDuplicatedOrderNumber).Times(maxOrderNumberAttempts)
				return repo, pub
			},
			params:  newOrderParams(),
			wantErr: ErrConflict,
		},
		{
			name: "参数非法",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				return repomocks.NewMockOrderRepository(ctrl), svcmocks.NewMockEventPublisher(ctrl)
			},
			params: func() domain.NewOrderParams {
				p := newOrderParams()
				p.Items = nil
				return p
			}(),
			wantErr: ErrValidation,
		},
		{
			name: "存储不可用",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				pub := svcmocks.NewMockEventPublisher(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(driver.ErrBadConn)
				return repo, pub
			},
			params:  newOrderParams(),
			wantErr: ErrUnavailable,
		},
		{
			name: "未知错误",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				pub := svcmocks.NewMockEventPublisher(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("mock db error"))
				return repo, pub
			},
			params:  newOrderParams(),
			wantErr: ErrInternal,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, pub := tc.mock(ctrl)
			svc := NewService(repo, pub, domain.NewPricer(domain.DefaultPricingConfig()), sequentialIDs(), fixedNumbers())
			o, err := svc.CreateOrder(context.Background(), tc.params)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.after(t, o)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name            string
		mock            func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher)
		target          domain.OrderStatus
		note            string
		expectedVersion int64
		wantErr         error
		after           func(t *testing.T, o domain.Order)
	}{
		{
			name: "确认订单",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				pub := svcmocks.NewMockEventPublisher(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(existingOrder(domain.StatusPending, 1), nil)
				repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order, version int64, evt domain.Event) (domain.Order, error) {
						assert.Equal(t, domain.StatusConfirmed, o.Status)
						assert.Equal(t, domain.EventOrderUpdated, evt.Type)
						o.Version = version + 1
						return o, nil
					})
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)
				return repo, pub
			},
			target:          domain.StatusConfirmed,
			note:            "payment verified",
			expectedVersion: 1,
			after: func(t *testing.T, o domain.Order) {
				assert.Equal(t, domain.StatusConfirmed, o.Status)
				assert.Equal(t, int64(2), o.Version)
				last, ok := o.LastChange()
				require.True(t, ok)
				assert.Equal(t, "payment verified", last.Note)
				assert.Len(t, o.StatusHistory, 2)
			},
		},
		{
			name: "不校验版本号",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				pub := svcmocks.NewMockEventPublisher(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(existingOrder(domain.StatusShipped, 5), nil)
				repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order, version int64, evt domain.Event) (domain.Order, error) {
						o.Version = version + 1
						return o, nil
					})
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)
				return repo, pub
			},
			target: domain.StatusDelivered,
			after: func(t *testing.T, o domain.Order) {
				assert.Equal(t, domain.StatusDelivered, o.Status)
				last, _ := o.LastChange()
				assert.Equal(t, "Status changed to delivered", last.Note)
			},
		},
		{
			name: "版本号不一致",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(existingOrder(domain.StatusPending, 3), nil)
				return repo, svcmocks.NewMockEventPublisher(ctrl)
			},
			target:          domain.StatusConfirmed,
			expectedVersion: 2,
			wantErr:         ErrConflict,
		},
		{
			name: "非法流转",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(existingOrder(domain.StatusDelivered, 1), nil)
				return repo, svcmocks.NewMockEventPublisher(ctrl)
			},
			target:  domain.StatusPending,
			wantErr: ErrInvalidTransition,
		},
		{
			name: "未知状态",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(existingOrder(domain.StatusPending, 1), nil)
				return repo, svcmocks.NewMockEventPublisher(ctrl)
			},
			target:  "lost",
			wantErr: ErrValidation,
		},
		{
			name: "订单不存在",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Order{}, repository.ErrOrderNotFound)
				return repo, svcmocks.NewMockEventPublisher(ctrl)
			},
			target:  domain.StatusConfirmed,
			wantErr: ErrNotFound,
		},
		{
			name: "并发修改",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, EventPublisher) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(existingOrder(domain.StatusPending, 1), nil)
				repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
					Return(domain.Order{}, repository.ErrVersionConflict)
				return repo, svcmocks.NewMockEventPublisher(ctrl)
			},
			target:  domain.StatusCancelled,
			wantErr: ErrConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, pub := tc.mock(ctrl)
			svc := NewService(repo, pub, domain.NewPricer(domain.DefaultPricingConfig()), sequentialIDs(), fixedNumbers())
			o, err := svc.UpdateStatus(context.Background(), 1, tc.target, tc.note, tc.expectedVersion)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.after(t, o)
		})
	}
}

func TestService_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockOrderRepository(ctrl)
	filter := domain.OrderFilter{Status: domain.StatusPending, UserID: "u-1"}
	repo.EXPECT().List(gomock.Any(), filter, 10, 10).
		Return([]domain.Order{existingOrder(domain.StatusPending, 1)}, nil)
	repo.EXPECT().Count(gomock.Any(), filter).Return(int64(11), nil)
	svc := NewService(repo, svcmocks.NewMockEventPublisher(ctrl), domain.NewPricer(domain.DefaultPricingConfig()), sequentialIDs(), fixedNumbers())

	orders, total, err := svc.ListOrders(context.Background(), filter, domain.NewPage(2, 10))
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(11), total)

	_, _, err = svc.ListOrders(context.Background(), domain.OrderFilter{Status: "lost"}, domain.NewPage(1, 10))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateOrderConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		mu         sync.Mutex
		stored     = make(map[string]int64)
		duplicated int
	)
	repo := repomocks.NewMockOrderRepository(ctrl)
	// 与数据库唯一索引一致，订单号重复时拒绝写入
	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, o domain.Order, evt domain.Event) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := stored[o.OrderNumber]; ok {
				duplicated++
				return fmt.Errorf("%w: %s", repository.ErrDuplicatedOrderNumber, o.OrderNumber)
			}
			stored[o.OrderNumber] = o.ID
			return nil
		}).AnyTimes()
	pub := svcmocks.NewMockEventPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	var seq atomic.Int64
	ids := idFunc(func() int64 {
		return seq.Add(1)
	})
	// 每三个 id 中有一个拿到同一个订单号
	numbers := numberFunc(func(id int64) (string, error) {
		if id%3 == 0 {
			return "ORD-20240101-0000-HOTHOTHO", nil
		}
		return fmt.Sprintf("ORD-20240101-%04d-ABCDEFGH", id), nil
	})
	svc := NewService(repo, pub, domain.NewPricer(domain.DefaultPricingConfig()), ids, numbers)

	const n = 20
	var wg sync.WaitGroup
	orders := make([]domain.Order, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			orders[i], errs[i] = svc.CreateOrder(context.Background(), newOrderParams())
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	created := 0
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			// 连续冲突超过重试次数
			assert.ErrorIs(t, errs[i], ErrConflict)
			continue
		}
		created++
		_, ok := seen[orders[i].OrderNumber]
		assert.False(t, ok, "订单号重复 %s", orders[i].OrderNumber)
		seen[orders[i].OrderNumber] = struct{}{}
		assert.Equal(t, orders[i].ID, stored[orders[i].OrderNumber])
	}
	assert.Equal(t, len(stored), created)
	assert.Greater(t, created, 0)
	// 至少有 6 次尝试拿到了同一个订单号，只有一次能写入
	assert.GreaterOrEqual(t, duplicated, 5)
}

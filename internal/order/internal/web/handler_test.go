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

package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/cloudcart/internal/auth"
	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/errs"
	"github.com/ecodeclub/cloudcart/internal/order/internal/service"
	svcmocks "github.com/ecodeclub/cloudcart/internal/order/internal/service/mocks"
	"github.com/ecodeclub/cloudcart/internal/test"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	owner     = auth.Identity{UserID: "u-1", Email: "u1@example.com", Role: auth.RoleUser}
	stranger  = auth.Identity{UserID: "u-2", Email: "u2@example.com", Role: auth.RoleUser}
	moderator = auth.Identity{UserID: "m-1", Email: "m1@example.com", Role: auth.RoleModerator}
	admin     = auth.Identity{UserID: "a-1", Email: "a1@example.com", Role: auth.RoleAdmin}
)

// memoryCache 只实现了下单去重用到的方法
type memoryCache struct {
	ecache.Cache
	keys map[string]any
}

func newMemoryCache() *memoryCache {
	return &memoryCache{keys: make(map[string]any)}
}

func (c *memoryCache) SetNX(_ context.Context, key string, val any, _ time.Duration) (bool, error) {
	if _, ok := c.keys[key]; ok {
		return false, nil
	}
	c.keys[key] = val
	return true, nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) (int64, error) {
	var cnt int64
	for _, k := range keys {
		if _, ok := c.keys[k]; ok {
			delete(c.keys, k)
			cnt++
		}
	}
	return cnt, nil
}

func newServer(hdl *Handler, id *auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		if id != nil {
			auth.SetIdentity(ctx, *id)
		}
	})
	hdl.PrivateRoutes(server)
	return server
}

func newRequest(t *testing.T, path string, body any) *http.Request {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	return req
}

func sampleOrder(userID string) domain.Order {
	return domain.Order{
		ID:          11,
		OrderNumber: "ORD-20240101-0011-ABCDEFGH",
		UserID:      userID,
		Items: []domain.OrderItem{
			{ProductID: "p1", SKU: "sku-1", ProductName: "Widget", Quantity: 2, UnitPrice: 1000, TotalPrice: 2000},
		},
		ShippingAddress: domain.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US"},
		BillingAddress:  domain.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US"},
		PaymentMethod:   domain.PaymentMethodCreditCard,
		Subtotal:        2000,
		TaxAmount:       160,
		ShippingCost:    999,
		TotalAmount:     3159,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		StatusHistory:   []domain.StatusChange{{Status: domain.StatusPending, Note: "Order created", Ctime: 100}},
		Version:         1,
		Ctime:           100,
		Utime:           100,
	}
}

func createReq(requestID string) CreateOrderReq {
	return CreateOrderReq{
		RequestID: requestID,
		Items: []OrderItem{
			{ProductID: "p1", SKU: "sku-1", ProductName: "Widget", Quantity: 2, UnitPrice: 1000},
		},
		ShippingAddress: Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US"},
		PaymentMethod:   "credit_card",
	}
}

func TestHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name     string
		id       *auth.Identity
		mock     func(ctrl *gomock.Controller) service.Service
		cache    func() *memoryCache
		req      CreateOrderReq
		wantCode int
		wantRes  int
		after    func(t *testing.T, c *memoryCache, res test.Result[Order])
	}{
		{
			name: "下单成功",
			id:   &owner,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.NewOrderParams) (domain.Order, error) {
						assert.Equal(t, "u-1", p.UserID)
						assert.Nil(t, p.BillingAddress)
						assert.Equal(t, domain.PaymentMethodCreditCard, p.PaymentMethod)
						assert.Equal(t, int64(2), p.Items[0].Quantity)
						return sampleOrder(p.UserID), nil
					})
				return svc
			},
			cache:    newMemoryCache,
			req:      createReq("req-1"),
			wantCode: http.StatusOK,
			after: func(t *testing.T, c *memoryCache, res test.Result[Order]) {
				assert.Equal(t, int64(11), res.Data.ID)
				assert.Equal(t, "pending", res.Data.Status)
				assert.Equal(t, int64(3159), res.Data.TotalAmount)
				assert.Equal(t, "Order created", res.Data.StatusHistory[0].Note)
				assert.Contains(t, c.keys, "order:create:req-1")
			},
		},
		{
			name: "重复提交",
			id:   &owner,
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			cache: func() *memoryCache {
				c := newMemoryCache()
				c.keys["order:create:req-1"] = "u-1"
				return c
			},
			req:      createReq("req-1"),
			wantCode: http.StatusOK,
			wantRes:  errs.DuplicateRequest.Code,
		},
		{
			name: "参数错误释放requestId",
			id:   &owner,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(domain.Order{}, fmt.Errorf("%w: 订单项不能为空", service.ErrValidation))
				return svc
			},
			cache:    newMemoryCache,
			req:      createReq("req-2"),
			wantCode: http.StatusOK,
			wantRes:  errs.InvalidParam.Code,
			after: func(t *testing.T, c *memoryCache, res test.Result[Order]) {
				assert.NotContains(t, c.keys, "order:create:req-2")
				assert.Contains(t, res.Msg, "订单项不能为空")
			},
		},
		{
			name: "存储不可用",
			id:   &owner,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(domain.Order{}, service.ErrUnavailable)
				return svc
			},
			cache:    newMemoryCache,
			req:      createReq(""),
			wantCode: http.StatusInternalServerError,
			wantRes:  errs.ServiceBusy.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := tc.cache()
			server := newServer(NewHandler(tc.mock(ctrl), c), tc.id)
			recorder := test.NewJSONResponseRecorder[Order]()
			server.ServeHTTP(recorder, newRequest(t, "/order/create", tc.req))
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantRes, res.Code)
			if tc.after != nil {
				tc.after(t, c, res)
			}
		})
	}
}

func TestHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newServer(NewHandler(svcmocks.NewMockService(ctrl), newMemoryCache()), nil)
	recorder := test.NewJSONResponseRecorder[Order]()
	server.ServeHTTP(recorder, newRequest(t, "/order/create", createReq("")))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_ListOrders(t *testing.T) {
	testCases := []struct {
		name     string
		id       *auth.Identity
		req      ListOrdersReq
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantRes  int
		after    func(t *testing.T, res ListOrdersResp)
	}{
		{
			name: "普通用户只能看到自己的订单",
			id:   &owner,
			req:  ListOrdersReq{Status: "pending", Page: 2, Limit: 1},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().ListOrders(gomock.Any(),
					domain.OrderFilter{Status: domain.StatusPending, UserID: "u-1"},
					domain.Page{Page: 2, Limit: 1}).
					Return([]domain.Order{sampleOrder("u-1")}, int64(3), nil)
				return svc
			},
			wantCode: http.StatusOK,
			after: func(t *testing.T, res ListOrdersResp) {
				assert.Len(t, res.Orders, 1)
				assert.Equal(t, int64(3), res.Total)
				assert.Equal(t, 2, res.Page)
				assert.Equal(t, 1, res.Limit)
				assert.Equal(t, int64(3), res.Pages)
			},
		},
		{
			name: "管理员查看全部订单并修正分页",
			id:   &moderator,
			req:  ListOrdersReq{Page: 0, Limit: 500},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().ListOrders(gomock.Any(), domain.OrderFilter{}, domain.Page{Page: 1, Limit: 100}).
					Return([]domain.Order{}, int64(0), nil)
				return svc
			},
			wantCode: http.StatusOK,
			after: func(t *testing.T, res ListOrdersResp) {
				assert.Empty(t, res.Orders)
				assert.Equal(t, int64(0), res.Pages)
				assert.Equal(t, 100, res.Limit)
			},
		},
		{
			name: "未知状态",
			id:   &owner,
			req:  ListOrdersReq{Status: "lost"},
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusOK,
			wantRes:  errs.InvalidParam.Code,
		},
		{
			name: "查询失败",
			id:   &owner,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().ListOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, int64(0), service.ErrInternal)
				return svc
			},
			wantCode: http.StatusInternalServerError,
			wantRes:  errs.SystemError.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(NewHandler(tc.mock(ctrl), newMemoryCache()), tc.id)
			recorder := test.NewJSONResponseRecorder[ListOrdersResp]()
			server.ServeHTTP(recorder, newRequest(t, "/order/list", tc.req))
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantRes, res.Code)
			if tc.after != nil {
				tc.after(t, res.Data)
			}
		})
	}
}

func TestHandler_UserOrders(t *testing.T) {
	testCases := []struct {
		name     string
		id       *auth.Identity
		req      UserOrdersReq
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantRes  int
	}{
		{
			name: "查看自己的订单",
			id:   &owner,
			req:  UserOrdersReq{UserID: "u-1"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().ListOrders(gomock.Any(), domain.OrderFilter{UserID: "u-1"}, domain.Page{Page: 1, Limit: 20}).
					Return([]domain.Order{sampleOrder("u-1")}, int64(1), nil)
				return svc
			},
			wantCode: http.StatusOK,
		},
		{
			name: "查看别人的订单",
			id:   &stranger,
			req:  UserOrdersReq{UserID: "u-1"},
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "管理员查看别人的订单",
			id:   &admin,
			req:  UserOrdersReq{UserID: "u-1", Page: 1, Limit: 5},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().ListOrders(gomock.Any(), domain.OrderFilter{UserID: "u-1"}, domain.Page{Page: 1, Limit: 5}).
					Return([]domain.Order{}, int64(0), nil)
				return svc
			},
			wantCode: http.StatusOK,
		},
		{
			name: "缺少userId",
			id:   &admin,
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusOK,
			wantRes:  errs.InvalidParam.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(NewHandler(tc.mock(ctrl), newMemoryCache()), tc.id)
			recorder := test.NewJSONResponseRecorder[ListOrdersResp]()
			server.ServeHTTP(recorder, newRequest(t, "/order/user/list", tc.req))
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantRes, recorder.MustScan().Code)
		})
	}
}

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name    string
		id      *auth.Identity
		path    string
		req     any
		mock    func(ctrl *gomock.Controller) service.Service
		wantRes int
	}{
		{
			name: "查看自己的订单",
			id:   &owner,
			path: "/order/detail",
			req:  OrderIDReq{ID: 11},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(11)).Return(sampleOrder("u-1"), nil)
				return svc
			},
		},
		{
			name: "别人的订单按照不存在处理",
			id:   &stranger,
			path: "/order/detail",
			req:  OrderIDReq{ID: 11},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(11)).Return(sampleOrder("u-1"), nil)
				return svc
			},
			wantRes: errs.OrderNotFound.Code,
		},
		{
			name: "管理员按订单号查询",
			id:   &moderator,
			path: "/order/detail/number",
			req:  OrderNumberReq{OrderNumber: "ORD-20240101-0011-ABCDEFGH"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().FindByOrderNumber(gomock.Any(), "ORD-20240101-0011-ABCDEFGH").
					Return(sampleOrder("u-1"), nil)
				return svc
			},
		},
		{
			name: "订单不存在",
			id:   &owner,
			path: "/order/detail/number",
			req:  OrderNumberReq{OrderNumber: "ORD-none"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().FindByOrderNumber(gomock.Any(), "ORD-none").
					Return(domain.Order{}, service.ErrNotFound)
				return svc
			},
			wantRes: errs.OrderNotFound.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(NewHandler(tc.mock(ctrl), newMemoryCache()), tc.id)
			recorder := test.NewJSONResponseRecorder[Order]()
			server.ServeHTTP(recorder, newRequest(t, tc.path, tc.req))
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantRes, res.Code)
			if tc.wantRes == 0 {
				assert.Equal(t, "ORD-20240101-0011-ABCDEFGH", res.Data.OrderNumber)
			}
		})
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		id       *auth.Identity
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantRes  int
	}{
		{
			name: "普通用户不能修改状态",
			id:   &owner,
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "修改成功",
			id:   &moderator,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				o := sampleOrder("u-1")
				o.Status = domain.StatusConfirmed
				o.Version = 2
				svc.EXPECT().UpdateStatus(gomock.Any(), int64(11), domain.StatusConfirmed, "ok", int64(1)).Return(o, nil)
				return svc
			},
			wantCode: http.StatusOK,
		},
		{
			name: "状态流转非法",
			id:   &admin,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().UpdateStatus(gomock.Any(), int64(11), domain.StatusConfirmed, "ok", int64(1)).
					Return(domain.Order{}, fmt.Errorf("%w: delivered -> confirmed", service.ErrInvalidTransition))
				return svc
			},
			wantCode: http.StatusOK,
			wantRes:  errs.InvalidTransition.Code,
		},
		{
			name: "版本冲突",
			id:   &admin,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().UpdateStatus(gomock.Any(), int64(11), domain.StatusConfirmed, "ok", int64(1)).
					Return(domain.Order{}, service.ErrConflict)
				return svc
			},
			wantCode: http.StatusOK,
			wantRes:  errs.OrderConflict.Code,
		},
		{
			name: "系统错误",
			id:   &admin,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().UpdateStatus(gomock.Any(), int64(11), domain.StatusConfirmed, "ok", int64(1)).
					Return(domain.Order{}, errors.New("mock db error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
			wantRes:  errs.SystemError.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(NewHandler(tc.mock(ctrl), newMemoryCache()), tc.id)
			recorder := test.NewJSONResponseRecorder[Order]()
			server.ServeHTTP(recorder, newRequest(t, "/order/status", UpdateStatusReq{
				ID: 11, Status: "confirmed", Note: "ok", Version: 1,
			}))
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == http.StatusForbidden {
				return
			}
			res := recorder.MustScan()
			assert.Equal(t, tc.wantRes, res.Code)
			if tc.wantRes == 0 {
				assert.Equal(t, "confirmed", res.Data.Status)
				assert.Equal(t, int64(2), res.Data.Version)
			}
		})
	}
}

func TestHandler_Summary(t *testing.T) {
	t.Run("管理员", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockService(ctrl)
		svc.EXPECT().Summary(gomock.Any()).Return(domain.Summary{
			TotalOrders:     3,
			StatusBreakdown: map[domain.OrderStatus]int64{domain.StatusPending: 2, domain.StatusDelivered: 1},
			Revenue:         domain.Revenue{TotalRevenue: 3159, PaidOrders: 1, AvgOrderValue: 3159, TotalItems: 2},
		}, nil)
		server := newServer(NewHandler(svc, newMemoryCache()), &admin)
		recorder := test.NewJSONResponseRecorder[Summary]()
		server.ServeHTTP(recorder, newRequest(t, "/order/analytics/summary", map[string]any{}))
		require.Equal(t, http.StatusOK, recorder.Code)
		res := recorder.MustScan().Data
		assert.Equal(t, int64(3), res.TotalOrders)
		assert.Equal(t, map[string]int64{"pending": 2, "delivered": 1}, res.StatusBreakdown)
		assert.Equal(t, int64(3159), res.Revenue.TotalRevenue)
	})
	t.Run("没有权限", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		server := newServer(NewHandler(svcmocks.NewMockService(ctrl), newMemoryCache()), &moderator)
		recorder := test.NewJSONResponseRecorder[Summary]()
		server.ServeHTTP(recorder, newRequest(t, "/order/analytics/summary", map[string]any{}))
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

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
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/cloudcart/internal/auth"
	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/errs"
	"github.com/ecodeclub/cloudcart/internal/order/internal/service"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 同一个 requestId 在这段时间内只能下单一次
const requestIDExpiration = 24 * time.Hour

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	cache  ecache.Cache
	logger *elog.Component
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache, logger: elog.DefaultLogger}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.B[CreateOrderReq](h.CreateOrder))
	g.POST("/list", ginx.B[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.B[OrderIDReq](h.Detail))
	g.POST("/detail/number", ginx.B[OrderNumberReq](h.DetailByNumber))
	g.POST("/status", ginx.B[UpdateStatusReq](h.UpdateStatus))
	g.POST("/user/list", ginx.B[UserOrdersReq](h.UserOrders))
	g.POST("/analytics/summary", ginx.W(h.Summary))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// identity 没有登录或者没有权限时直接写响应，调用方返回 ginx.ErrNoResponse 即可
func (h *Handler) identity(ctx *ginx.Context, action auth.Action) (auth.Identity, bool) {
	id, ok := auth.GetIdentity(ctx.Context)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return auth.Identity{}, false
	}
	if !id.Allowed(action) {
		ctx.AbortWithStatus(http.StatusForbidden)
		return auth.Identity{}, false
	}
	return id, true
}

// CreateOrder 下单，用户就是当前登录的用户
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq) (ginx.Result, error) {
	id, ok := h.identity(ctx, auth.ActionCreateOrder)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if req.RequestID != "" {
		ok, err := h.cache.SetNX(ctx.Request.Context(), h.requestKey(req.RequestID), id.UserID, requestIDExpiration)
		if err != nil {
			// 缓存不可用的时候放弃去重
			h.logger.Warn("检查请求ID失败", elog.String("requestId", req.RequestID), elog.FieldErr(err))
		} else if !ok {
			return result(errs.DuplicateRequest), nil
		}
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.NewOrderParams{
		UserID:          id.UserID,
		Items:           slice.Map(req.Items, func(idx int, src OrderItem) domain.OrderItem { return toDomainItem(src) }),
		ShippingAddress: toDomainAddress(req.ShippingAddress),
		BillingAddress:  toDomainAddressPtr(req.BillingAddress),
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		Notes:           req.Notes,
	})
	if err != nil {
		h.releaseRequestID(ctx.Request.Context(), req.RequestID)
		return errorResult(fmt.Errorf("创建订单失败: %w", err))
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

func (h *Handler) requestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

// releaseRequestID 下单失败之后允许客户端用同一个 requestId 重试
func (h *Handler) releaseRequestID(ctx context.Context, requestID string) {
	if requestID == "" {
		return
	}
	if _, err := h.cache.Delete(ctx, h.requestKey(requestID)); err != nil {
		h.logger.Warn("删除请求ID失败", elog.String("requestId", requestID), elog.FieldErr(err))
	}
}

// ListOrders 没有查看全部订单权限的用户只能看到自己的订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	id, ok := h.identity(ctx, auth.ActionReadOwnOrder)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	filter := domain.OrderFilter{Status: domain.OrderStatus(req.Status)}
	if filter.Status != "" && !filter.Status.IsValid() {
		return result(errs.NewInvalidParamErr(fmt.Errorf("未知的订单状态 %q", req.Status))), nil
	}
	if !id.Allowed(auth.ActionReadAnyOrder) {
		filter.UserID = id.UserID
	}
	return h.list(ctx, filter, domain.NewPage(req.Page, req.Limit))
}

// UserOrders 查看指定用户的订单
func (h *Handler) UserOrders(ctx *ginx.Context, req UserOrdersReq) (ginx.Result, error) {
	id, ok := h.identity(ctx, auth.ActionReadOwnOrder)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if req.UserID == "" {
		return result(errs.NewInvalidParamErr(fmt.Errorf("userId 不能为空"))), nil
	}
	if !id.CanRead(req.UserID) {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	return h.list(ctx, domain.OrderFilter{UserID: req.UserID}, domain.NewPage(req.Page, req.Limit))
}

func (h *Handler) list(ctx *ginx.Context, filter domain.OrderFilter, page domain.Page) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), filter, page)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
			Total: total,
			Page:  page.Page,
			Limit: page.Limit,
			Pages: page.Pages(total),
		},
	}, nil
}

// Detail 查看订单详情
func (h *Handler) Detail(ctx *ginx.Context, req OrderIDReq) (ginx.Result, error) {
	return h.detail(ctx, func(c context.Context) (domain.Order, error) {
		return h.svc.FindByID(c, req.ID)
	})
}

func (h *Handler) DetailByNumber(ctx *ginx.Context, req OrderNumberReq) (ginx.Result, error) {
	return h.detail(ctx, func(c context.Context) (domain.Order, error) {
		return h.svc.FindByOrderNumber(c, req.OrderNumber)
	})
}

// detail 别人的订单按照不存在处理
func (h *Handler) detail(ctx *ginx.Context, find func(c context.Context) (domain.Order, error)) (ginx.Result, error) {
	id, ok := h.identity(ctx, auth.ActionReadOwnOrder)
	if !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	order, err := find(ctx.Request.Context())
	if err != nil {
		return errorResult(err)
	}
	if !id.CanRead(order.UserID) {
		return result(errs.OrderNotFound), nil
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

// UpdateStatus 修改订单状态
func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	if _, ok := h.identity(ctx, auth.ActionUpdateOrderStatus); !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	order, err := h.svc.UpdateStatus(ctx.Request.Context(), req.ID, domain.OrderStatus(req.Status), req.Note, req.Version)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

// Summary 订单统计
func (h *Handler) Summary(ctx *ginx.Context) (ginx.Result, error) {
	if _, ok := h.identity(ctx, auth.ActionReadAnalytics); !ok {
		return ginx.Result{}, ginx.ErrNoResponse
	}
	s, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		return errorResult(err)
	}
	breakdown := make(map[string]int64, len(s.StatusBreakdown))
	for status, cnt := range s.StatusBreakdown {
		breakdown[status.String()] = cnt
	}
	return ginx.Result{
		Data: Summary{
			TotalOrders:     s.TotalOrders,
			StatusBreakdown: breakdown,
			Revenue: Revenue{
				TotalRevenue:  s.Revenue.TotalRevenue,
				PaidOrders:    s.Revenue.PaidOrders,
				AvgOrderValue: s.Revenue.AvgOrderValue,
				TotalItems:    s.Revenue.TotalItems,
			},
		},
	}, nil
}

func toDomainItem(src OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ProductID:   src.ProductID,
		SKU:         src.SKU,
		ProductName: src.ProductName,
		Quantity:    src.Quantity,
		UnitPrice:   src.UnitPrice,
	}
}

func toDomainAddress(src Address) domain.Address {
	return domain.Address{
		Street:  src.Street,
		City:    src.City,
		State:   src.State,
		ZipCode: src.ZipCode,
		Country: src.Country,
	}
}

func toDomainAddressPtr(src *Address) *domain.Address {
	if src == nil {
		return nil
	}
	addr := toDomainAddress(*src)
	return &addr
}

func toAddressVO(src domain.Address) Address {
	return Address{
		Street:  src.Street,
		City:    src.City,
		State:   src.State,
		ZipCode: src.ZipCode,
		Country: src.Country,
	}
}

func toOrderVO(order domain.Order) Order {
	return Order{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID:   src.ProductID,
				SKU:         src.SKU,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
				TotalPrice:  src.TotalPrice,
			}
		}),
		ShippingAddress: toAddressVO(order.ShippingAddress),
		BillingAddress:  toAddressVO(order.BillingAddress),
		PaymentMethod:   string(order.PaymentMethod),
		Notes:           order.Notes,
		Subtotal:        order.Subtotal,
		TaxAmount:       order.TaxAmount,
		ShippingCost:    order.ShippingCost,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status.String(),
		PaymentStatus:   order.PaymentStatus.String(),
		StatusHistory: slice.Map(order.StatusHistory, func(idx int, src domain.StatusChange) StatusChange {
			return StatusChange{Status: src.Status.String(), Note: src.Note, Timestamp: src.Ctime}
		}),
		Version: order.Version,
		Ctime:   order.Ctime,
		Utime:   order.Utime,
	}
}

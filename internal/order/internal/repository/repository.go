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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var (
	ErrOrderNotFound         = dao.ErrRecordNotFound
	ErrVersionConflict       = dao.ErrVersionConflict
	ErrDuplicatedOrderNumber = dao.ErrDuplicatedOrderNumber
	ErrDuplicatedEvent       = dao.ErrDuplicatedEvent
)

// IsUnavailable 存储暂时不可用
func IsUnavailable(err error) bool {
	return dao.IsUnavailable(err)
}

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go -typed OrderRepository
type OrderRepository interface {
	// Create 订单、订单项、第一条状态历史和待发送事件在同一个事务中写入
	Create(ctx context.Context, order domain.Order, evt domain.Event) error
	// SaveTransition 持久化 order 最后一条状态变更，返回版本号加一之后的订单
	SaveTransition(ctx context.Context, order domain.Order, version int64, evt domain.Event) (domain.Order, error)
	SavePaymentStatus(ctx context.Context, order domain.Order, version int64) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (domain.Order, error)
	FindByUserAndStatuses(ctx context.Context, uid string, statuses []domain.OrderStatus) ([]domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Order, error)
	Count(ctx context.Context, filter domain.OrderFilter) (int64, error)
	StatusBreakdown(ctx context.Context) (map[domain.OrderStatus]int64, error)
	PaidRevenue(ctx context.Context) (domain.Revenue, error)

	FindPendingEvents(ctx context.Context, before int64, limit int) ([]domain.Event, error)
	MarkEventSent(ctx context.Context, eventID string) error
	// ApplyOnce 在同一个事务里记录 eventID 并执行 fn，
	// eventID 已经记录过则返回 ErrDuplicatedEvent，fn 不会执行
	ApplyOnce(ctx context.Context, eventID, eventType string, fn func(repo OrderRepository) error) error
}

type orderRepository struct {
	d dao.OrderDAO
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order, evt domain.Event) error {
	h, _ := order.LastChange()
	return r.d.Create(ctx, r.toOrderEntity(order), r.toItemEntities(order), r.toHistoryEntity(h), r.toOutboxEntity(evt))
}

func (r *orderRepository) SaveTransition(ctx context.Context, order domain.Order, version int64, evt domain.Event) (domain.Order, error) {
	h, _ := order.LastChange()
	err := r.d.UpdateStatus(ctx, r.toOrderEntity(order), version, r.toHistoryEntity(h), r.toOutboxEntity(evt))
	if err != nil {
		return domain.Order{}, err
	}
	order.Version = version + 1
	return order, nil
}

func (r *orderRepository) SavePaymentStatus(ctx context.Context, order domain.Order, version int64) (domain.Order, error) {
	if err := r.d.UpdatePaymentStatus(ctx, r.toOrderEntity(order), version); err != nil {
		return domain.Order{}, err
	}
	order.Version = version + 1
	return order, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.one(ctx, o)
}

func (r *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (domain.Order, error) {
	o, err := r.d.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return domain.Order{}, err
	}
	return r.one(ctx, o)
}

func (r *orderRepository) FindByUserAndStatuses(ctx context.Context, uid string, statuses []domain.OrderStatus) ([]domain.Order, error) {
	orders, err := r.d.FindByUserAndStatuses(ctx, uid, slice.Map(statuses, func(idx int, src domain.OrderStatus) string {
		return src.String()
	}))
	if err != nil {
		return nil, err
	}
	return r.many(ctx, orders)
}

func (r *orderRepository) List(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Order, error) {
	orders, err := r.d.List(ctx, r.toFilter(filter), offset, limit)
	if err != nil {
		return nil, err
	}
	return r.many(ctx, orders)
}

func (r *orderRepository) Count(ctx context.Context, filter domain.OrderFilter) (int64, error) {
	return r.d.Count(ctx, r.toFilter(filter))
}

func (r *orderRepository) StatusBreakdown(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	counts, err := r.d.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.OrderStatus]int64, len(counts))
	for _, c := range counts {
		res[domain.OrderStatus(c.Status)] = c.Cnt
	}
	return res, nil
}

func (r *orderRepository) PaidRevenue(ctx context.Context) (domain.Revenue, error) {
	rev, err := r.d.PaidRevenue(ctx)
	if err != nil {
		return domain.Revenue{}, err
	}
	return domain.Revenue{
		TotalRevenue: rev.TotalRevenue,
		PaidOrders:   rev.PaidOrders,
		TotalItems:   rev.TotalItems,
	}, nil
}

func (r *orderRepository) FindPendingEvents(ctx context.Context, before int64, limit int) ([]domain.Event, error) {
	events, err := r.d.FindPendingOutboxEvents(ctx, before, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(events, func(idx int, src dao.OutboxEvent) domain.Event {
		return domain.Event{
			ID:          src.EventId,
			Type:        src.EventType,
			AggregateID: src.AggregateId,
			Payload:     src.Payload,
			Ctime:       src.Ctime,
		}
	}), nil
}

func (r *orderRepository) MarkEventSent(ctx context.Context, eventID string) error {
	return r.d.MarkOutboxEventSent(ctx, eventID, time.Now().UnixMilli())
}

func (r *orderRepository) ApplyOnce(ctx context.Context, eventID, eventType string, fn func(repo OrderRepository) error) error {
	return r.d.Transaction(ctx, func(tx dao.OrderDAO) error {
		err := tx.CreateProcessedEvent(ctx, dao.ProcessedEvent{
			EventId:   eventID,
			EventType: eventType,
			Ctime:     time.Now().UnixMilli(),
		})
		if err != nil {
			return err
		}
		return fn(&orderRepository{d: tx})
	})
}

func (r *orderRepository) one(ctx context.Context, o dao.Order) (domain.Order, error) {
	res, err := r.many(ctx, []dao.Order{o})
	if err != nil {
		return domain.Order{}, err
	}
	return res[0], nil
}

// many 批量加载订单项和状态历史
func (r *orderRepository) many(ctx context.Context, orders []dao.Order) ([]domain.Order, error) {
	if len(orders) == 0 {
		return []domain.Order{}, nil
	}
	ids := slice.Map(orders, func(idx int, src dao.Order) int64 {
		return src.Id
	})
	items, err := r.d.FindItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	histories, err := r.d.FindHistories(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemMap := make(map[int64][]domain.OrderItem, len(orders))
	for _, it := range items {
		itemMap[it.OrderId] = append(itemMap[it.OrderId], r.toItemDomain(it))
	}
	historyMap := make(map[int64][]domain.StatusChange, len(orders))
	for _, h := range histories {
		historyMap[h.OrderId] = append(historyMap[h.OrderId], domain.StatusChange{
			Status: domain.OrderStatus(h.Status),
			Note:   h.Note,
			Ctime:  h.Ctime,
		})
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		o := r.toOrderDomain(src)
		o.Items = itemMap[src.Id]
		o.StatusHistory = historyMap[src.Id]
		return o
	}), nil
}

func (r *orderRepository) toFilter(f domain.OrderFilter) dao.Filter {
	return dao.Filter{
		Status: f.Status.String(),
		UserId: f.UserID,
	}
}

func (r *orderRepository) toOrderEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserId:          o.UserID,
		ShippingAddress: r.toAddressEntity(o.ShippingAddress),
		BillingAddress:  r.toAddressEntity(o.BillingAddress),
		PaymentMethod:   string(o.PaymentMethod),
		Notes:           o.Notes,
		Subtotal:        o.Subtotal,
		TaxAmount:       o.TaxAmount,
		ShippingCost:    o.ShippingCost,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status.String(),
		PaymentStatus:   o.PaymentStatus.String(),
		Version:         o.Version,
		Ctime:           o.Ctime,
		Utime:           o.Utime,
	}
}

func (r *orderRepository) toOrderDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:              o.Id,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserId,
		ShippingAddress: r.toAddressDomain(o.ShippingAddress),
		BillingAddress:  r.toAddressDomain(o.BillingAddress),
		PaymentMethod:   domain.PaymentMethod(o.PaymentMethod),
		Notes:           o.Notes,
		Subtotal:        o.Subtotal,
		TaxAmount:       o.TaxAmount,
		ShippingCost:    o.ShippingCost,
		TotalAmount:     o.TotalAmount,
		Status:          domain.OrderStatus(o.Status),
		PaymentStatus:   domain.PaymentStatus(o.PaymentStatus),
		Version:         o.Version,
		Ctime:           o.Ctime,
		Utime:           o.Utime,
	}
}

func (r *orderRepository) toAddressEntity(a domain.Address) sqlx.JsonColumn[dao.Address] {
	return sqlx.JsonColumn[dao.Address]{
		Val: dao.Address{
			Street:  a.Street,
			City:    a.City,
			State:   a.State,
			ZipCode: a.ZipCode,
			Country: a.Country,
		},
		Valid: true,
	}
}

func (r *orderRepository) toAddressDomain(a sqlx.JsonColumn[dao.Address]) domain.Address {
	return domain.Address{
		Street:  a.Val.Street,
		City:    a.Val.City,
		State:   a.Val.State,
		ZipCode: a.Val.ZipCode,
		Country: a.Val.Country,
	}
}

func (r *orderRepository) toItemEntities(o domain.Order) []dao.OrderItem {
	return slice.Map(o.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			OrderId:     o.ID,
			ProductId:   src.ProductID,
			SKU:         src.SKU,
			ProductName: src.ProductName,
			Quantity:    src.Quantity,
			UnitPrice:   src.UnitPrice,
			TotalPrice:  src.TotalPrice,
			Ctime:       o.Ctime,
			Utime:       o.Utime,
		}
	})
}

func (r *orderRepository) toItemDomain(it dao.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ProductID:   it.ProductId,
		SKU:         it.SKU,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		TotalPrice:  it.TotalPrice,
	}
}

func (r *orderRepository) toHistoryEntity(h domain.StatusChange) dao.OrderStatusHistory {
	return dao.OrderStatusHistory{
		Status: h.Status.String(),
		Note:   h.Note,
		Ctime:  h.Ctime,
	}
}

func (r *orderRepository) toOutboxEntity(evt domain.Event) dao.OutboxEvent {
	return dao.OutboxEvent{
		EventId:     evt.ID,
		EventType:   evt.Type,
		AggregateId: evt.AggregateID,
		Payload:     evt.Payload,
		Status:      dao.OutboxStatusPending,
		Ctime:       evt.Ctime,
		Utime:       evt.Ctime,
	}
}

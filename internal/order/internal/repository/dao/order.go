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

package dao

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound        = gorm.ErrRecordNotFound
	ErrVersionConflict       = errors.New("订单已被并发修改")
	ErrDuplicatedOrderNumber = errors.New("订单号重复")
	ErrDuplicatedEvent       = errors.New("事件已处理")
)

const uniqueIndexErrNo uint16 = 1062

type OrderDAO interface {
	Create(ctx context.Context, o Order, items []OrderItem, h OrderStatusHistory, evt OutboxEvent) error
	// UpdateStatus 版本号与 version 一致时才会更新，并且版本号加一
	UpdateStatus(ctx context.Context, o Order, version int64, h OrderStatusHistory, evt OutboxEvent) error
	UpdatePaymentStatus(ctx context.Context, o Order, version int64) error
	FindByID(ctx context.Context, id int64) (Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (Order, error)
	FindByUserAndStatuses(ctx context.Context, uid string, statuses []string) ([]Order, error)
	FindItems(ctx context.Context, orderIDs []int64) ([]OrderItem, error)
	FindHistories(ctx context.Context, orderIDs []int64) ([]OrderStatusHistory, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]Order, error)
	Count(ctx context.Context, f Filter) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	PaidRevenue(ctx context.Context) (Revenue, error)

	FindPendingOutboxEvents(ctx context.Context, before int64, limit int) ([]OutboxEvent, error)
	MarkOutboxEventSent(ctx context.Context, eventID string, utime int64) error
	// CreateProcessedEvent 重复的事件返回 ErrDuplicatedEvent
	CreateProcessedEvent(ctx context.Context, pe ProcessedEvent) error

	// Transaction fn 中的 tx 与事务绑定
	Transaction(ctx context.Context, fn func(tx OrderDAO) error) error
}

type orderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &orderGORMDAO{db: db}
}

func isDuplicated(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == uniqueIndexErrNo
}

// IsUnavailable 数据库暂时不可用，可以稍后重试
func IsUnavailable(err error) bool {
	var ne net.Error
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &ne)
}

func (g *orderGORMDAO) Transaction(ctx context.Context, fn func(tx OrderDAO) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderGORMDAO{db: tx})
	})
}

func (g *orderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem, h OrderStatusHistory, evt OutboxEvent) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			if isDuplicated(err) {
				return fmt.Errorf("%w: %s", ErrDuplicatedOrderNumber, o.OrderNumber)
			}
			return fmt.Errorf("创建订单失败: %w", err)
		}
		for i := range items {
			items[i].OrderId = o.Id
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("创建订单项失败: %w", err)
		}
		h.OrderId = o.Id
		if err := tx.Create(&h).Error; err != nil {
			return fmt.Errorf("创建订单状态历史失败: %w", err)
		}
		if err := tx.Create(&evt).Error; err != nil {
			return fmt.Errorf("创建待发送事件失败: %w", err)
		}
		return nil
	})
}

func (g *orderGORMDAO) UpdateStatus(ctx context.Context, o Order, version int64, h OrderStatusHistory, evt OutboxEvent) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Order{}).
			Where("id = ? AND version = ?", o.Id, version).
			Updates(map[string]any{
				"status":         o.Status,
				"payment_status": o.PaymentStatus,
				"version":        version + 1,
				"utime":          o.Utime,
			})
		if res.Error != nil {
			return fmt.Errorf("更新订单状态失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: id=%d, version=%d", ErrVersionConflict, o.Id, version)
		}
		h.OrderId = o.Id
		if err := tx.Create(&h).Error; err != nil {
			return fmt.Errorf("创建订单状态历史失败: %w", err)
		}
		if err := tx.Create(&evt).Error; err != nil {
			return fmt.Errorf("创建待发送事件失败: %w", err)
		}
		return nil
	})
}

func (g *orderGORMDAO) UpdatePaymentStatus(ctx context.Context, o Order, version int64) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND version = ?", o.Id, version).
		Updates(map[string]any{
			"payment_status": o.PaymentStatus,
			"version":        version + 1,
			"utime":          o.Utime,
		})
	if res.Error != nil {
		return fmt.Errorf("更新支付状态失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d, version=%d", ErrVersionConflict, o.Id, version)
	}
	return nil
}

func (g *orderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *orderGORMDAO) FindByOrderNumber(ctx context.Context, orderNumber string) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&res).Error
	return res, err
}

func (g *orderGORMDAO) FindByUserAndStatuses(ctx context.Context, uid string, statuses []string) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", uid, statuses).
		Order("ctime ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) FindItems(ctx context.Context, orderIDs []int64) ([]OrderItem, error) {
	var res []OrderItem
	if len(orderIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) FindHistories(ctx context.Context, orderIDs []int64) ([]OrderStatusHistory, error) {
	var res []OrderStatusHistory
	if len(orderIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) filter(ctx context.Context, f Filter) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Order{})
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.UserId != "" {
		db = db.Where("user_id = ?", f.UserId)
	}
	return db
}

func (g *orderGORMDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.filter(ctx, f).
		Order("ctime DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var res int64
	err := g.filter(ctx, f).Count(&res).Error
	return res, err
}

func (g *orderGORMDAO) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var res []StatusCount
	err := g.db.WithContext(ctx).Model(&Order{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&res).Error
	return res, err
}

func (g *orderGORMDAO) PaidRevenue(ctx context.Context) (Revenue, error) {
	const paid = "paid"
	var res Revenue
	err := g.db.WithContext(ctx).Model(&Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_revenue, COUNT(*) AS paid_orders").
		Where("payment_status = ?", paid).
		Scan(&res).Error
	if err != nil {
		return Revenue{}, err
	}
	err = g.db.WithContext(ctx).Model(&OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.payment_status = ?", paid).
		Count(&res.TotalItems).Error
	return res, err
}

func (g *orderGORMDAO) FindPendingOutboxEvents(ctx context.Context, before int64, limit int) ([]OutboxEvent, error) {
	var res []OutboxEvent
	err := g.db.WithContext(ctx).
		Where("status = ? AND ctime <= ?", OutboxStatusPending, before).
		Order("ctime ASC, id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) MarkOutboxEventSent(ctx context.Context, eventID string, utime int64) error {
	return g.db.WithContext(ctx).Model(&OutboxEvent{}).
		Where("event_id = ?", eventID).
		Updates(map[string]any{
			"status": OutboxStatusSent,
			"utime":  utime,
		}).Error
}

func (g *orderGORMDAO) CreateProcessedEvent(ctx context.Context, pe ProcessedEvent) error {
	err := g.db.WithContext(ctx).Create(&pe).Error
	if isDuplicated(err) {
		return fmt.Errorf("%w: %s", ErrDuplicatedEvent, pe.EventId)
	}
	return err
}

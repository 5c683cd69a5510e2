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
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation        = errors.New("订单参数非法")
	ErrInvalidTransition = errors.New("订单状态流转非法")
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRefunded   OrderStatus = "refunded"
)

// OrderStatuses 按生命周期排列的全部状态
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusRefunded,
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodDebitCard      PaymentMethod = "debit_card"
	PaymentMethodPaypal         PaymentMethod = "paypal"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPaypal,
		PaymentMethodBankTransfer, PaymentMethodCashOnDelivery:
		return true
	default:
		return false
	}
}

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

func (a Address) validate(name string) error {
	fields := []struct {
		key string
		val string
	}{
		{key: "street", val: a.Street},
		{key: "city", val: a.City},
		{key: "state", val: a.State},
		{key: "zipCode", val: a.ZipCode},
		{key: "country", val: a.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.val) == "" {
			return fmt.Errorf("%w: %s.%s 不能为空", ErrValidation, name, f.key)
		}
	}
	return nil
}

type OrderItem struct {
	ProductID   string
	SKU         string
	ProductName string
	Quantity    int64
	// 金额单位均为分
	UnitPrice  int64
	TotalPrice int64
}

type StatusChange struct {
	Status OrderStatus
	Note   string
	Ctime  int64
}

type Order struct {
	ID              int64
	OrderNumber     string
	UserID          string
	Items           []OrderItem
	ShippingAddress Address
	BillingAddress  Address
	PaymentMethod   PaymentMethod
	Notes           string

	Subtotal     int64
	TaxAmount    int64
	ShippingCost int64
	TotalAmount  int64

	Status        OrderStatus
	PaymentStatus PaymentStatus
	StatusHistory []StatusChange
	Version       int64
	Ctime         int64
	Utime         int64
}

// LastChange 返回最近一次状态变更
func (o Order) LastChange() (StatusChange, bool) {
	if len(o.StatusHistory) == 0 {
		return StatusChange{}, false
	}
	return o.StatusHistory[len(o.StatusHistory)-1], true
}

// MarkPaid 已支付或已退款的订单不再变化
func (o *Order) MarkPaid(now int64) bool {
	if o.PaymentStatus != PaymentStatusPending && o.PaymentStatus != PaymentStatusFailed {
		return false
	}
	o.PaymentStatus = PaymentStatusPaid
	o.Utime = now
	return true
}

func (o *Order) MarkPaymentFailed(now int64) bool {
	if o.PaymentStatus != PaymentStatusPending {
		return false
	}
	o.PaymentStatus = PaymentStatusFailed
	o.Utime = now
	return true
}

type NewOrderParams struct {
	UserID          string
	Items           []OrderItem
	ShippingAddress Address
	// 为空时与收货地址一致
	BillingAddress *Address
	PaymentMethod  PaymentMethod
	Notes          string
}

// NewOrder 校验参数并计算金额，ID 与订单号由调用方分配
func NewOrder(p NewOrderParams, pricer Pricer, now int64) (Order, error) {
	if strings.TrimSpace(p.UserID) == "" {
		return Order{}, fmt.Errorf("%w: userId 不能为空", ErrValidation)
	}
	if len(p.Items) == 0 {
		return Order{}, fmt.Errorf("%w: 订单项不能为空", ErrValidation)
	}
	for i, item := range p.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return Order{}, fmt.Errorf("%w: items[%d].productId 不能为空", ErrValidation, i)
		}
		if strings.TrimSpace(item.SKU) == "" {
			return Order{}, fmt.Errorf("%w: items[%d].sku 不能为空", ErrValidation, i)
		}
		if strings.TrimSpace(item.ProductName) == "" {
			return Order{}, fmt.Errorf("%w: items[%d].productName 不能为空", ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return Order{}, fmt.Errorf("%w: items[%d].quantity 必须大于 0", ErrValidation, i)
		}
		if item.UnitPrice < 0 {
			return Order{}, fmt.Errorf("%w: items[%d].unitPrice 不能为负数", ErrValidation, i)
		}
	}
	if err := p.ShippingAddress.validate("shippingAddress"); err != nil {
		return Order{}, err
	}
	billing := p.ShippingAddress
	if p.BillingAddress != nil {
		if err := p.BillingAddress.validate("billingAddress"); err != nil {
			return Order{}, err
		}
		billing = *p.BillingAddress
	}
	if !p.PaymentMethod.IsValid() {
		return Order{}, fmt.Errorf("%w: 未知的支付方式 %q", ErrValidation, p.PaymentMethod)
	}

	pricing := pricer.Price(p.Items)
	return Order{
		UserID:          p.UserID,
		Items:           pricing.Items,
		ShippingAddress: p.ShippingAddress,
		BillingAddress:  billing,
		PaymentMethod:   p.PaymentMethod,
		Notes:           p.Notes,
		Subtotal:        pricing.Subtotal,
		TaxAmount:       pricing.TaxAmount,
		ShippingCost:    pricing.ShippingCost,
		TotalAmount:     pricing.TotalAmount,
		Status:          StatusPending,
		PaymentStatus:   PaymentStatusPending,
		StatusHistory: []StatusChange{
			{Status: StatusPending, Note: "Order created", Ctime: now},
		},
		Version: 1,
		Ctime:   now,
		Utime:   now,
	}, nil
}

type OrderFilter struct {
	Status OrderStatus
	UserID string
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page 页码从 1 开始
type Page struct {
	Page  int
	Limit int
}

// NewPage 非法的页码修正为第一页，limit 限制在 [1, MaxPageLimit]
func NewPage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	switch {
	case limit <= 0:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages 总页数
func (p Page) Pages(total int64) int64 {
	return (total + int64(p.Limit) - 1) / int64(p.Limit)
}

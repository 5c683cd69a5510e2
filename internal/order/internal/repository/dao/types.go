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
	"github.com/ecodeclub/ekit/sqlx"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Order struct {
	Id              int64                    `gorm:"primaryKey;autoIncrement:false;comment:订单ID,雪花算法生成"`
	OrderNumber     string                   `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_number;comment:订单号"`
	UserId          string                   `gorm:"type:varchar(64);not null;index:idx_user_id_ctime,priority:1;comment:下单用户ID"`
	ShippingAddress sqlx.JsonColumn[Address] `gorm:"type:json;comment:收货地址"`
	BillingAddress  sqlx.JsonColumn[Address] `gorm:"type:json;comment:账单地址"`
	PaymentMethod   string                   `gorm:"type:varchar(32);not null;comment:支付方式"`
	Notes           string                   `gorm:"type:varchar(1024);not null;default:'';comment:备注"`
	Subtotal        int64                    `gorm:"not null;comment:商品小计;单位为分, 999表示9.99元"`
	TaxAmount       int64                    `gorm:"not null;comment:税费;单位为分"`
	ShippingCost    int64                    `gorm:"not null;comment:运费;单位为分"`
	TotalAmount     int64                    `gorm:"not null;comment:订单总额;单位为分"`
	Status          string                   `gorm:"type:varchar(16);not null;index:idx_status_ctime,priority:1;comment:订单状态"`
	PaymentStatus   string                   `gorm:"type:varchar(16);not null;index:idx_payment_status;comment:支付状态"`
	Version         int64                    `gorm:"not null;default:1;comment:乐观锁版本号"`
	Ctime           int64                    `gorm:"index:idx_user_id_ctime,priority:2;index:idx_status_ctime,priority:2"`
	Utime           int64
}

type OrderItem struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId     int64  `gorm:"not null;index:idx_order_id;comment:订单ID"`
	ProductId   string `gorm:"type:varchar(64);not null;comment:商品ID"`
	SKU         string `gorm:"type:varchar(64);not null;default:'';comment:SKU"`
	ProductName string `gorm:"type:varchar(255);not null;default:'';comment:商品名称"`
	Quantity    int64  `gorm:"not null;comment:购买数量"`
	UnitPrice   int64  `gorm:"not null;comment:单价;单位为分"`
	TotalPrice  int64  `gorm:"not null;comment:小计;单位为分"`
	Ctime       int64
	Utime       int64
}

type OrderStatusHistory struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	OrderId int64  `gorm:"not null;index:idx_order_id;comment:订单ID"`
	Status  string `gorm:"type:varchar(16);not null;comment:变更后的状态"`
	Note    string `gorm:"type:varchar(512);not null;default:'';comment:备注"`
	Ctime   int64
}

const (
	OutboxStatusPending uint8 = 1
	OutboxStatusSent    uint8 = 2
)

// OutboxEvent 与业务数据在同一个事务里写入，发送成功后标记为已发送
type OutboxEvent struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	EventId     string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_event_id;comment:事件ID"`
	EventType   string `gorm:"type:varchar(64);not null;comment:事件类型,即routing key"`
	AggregateId int64  `gorm:"not null;comment:订单ID"`
	Payload     []byte `gorm:"type:blob;not null;comment:JSON编码的事件内容"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_ctime,priority:1;comment:1=待发送 2=已发送"`
	Ctime       int64  `gorm:"index:idx_status_ctime,priority:2"`
	Utime       int64
}

func (OutboxEvent) TableName() string {
	return "order_outbox_events"
}

// ProcessedEvent 已经处理过的入站事件，用于去重
type ProcessedEvent struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	EventId   string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_event_id;comment:事件ID"`
	EventType string `gorm:"type:varchar(64);not null;comment:事件类型"`
	Ctime     int64
}

func (ProcessedEvent) TableName() string {
	return "order_processed_events"
}

type StatusCount struct {
	Status string
	Cnt    int64
}

type Revenue struct {
	TotalRevenue int64
	PaidOrders   int64
	TotalItems   int64
}

type Filter struct {
	Status string
	UserId string
}

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

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type OrderItem struct {
	ProductID   string `json:"productId"`
	SKU         string `json:"sku"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	// 单位为分
	UnitPrice  int64 `json:"unitPrice"`
	TotalPrice int64 `json:"totalPrice,omitempty"`
}

type StatusChange struct {
	Status    string `json:"status"`
	Note      string `json:"note"`
	Timestamp int64  `json:"timestamp"`
}

type Order struct {
	ID              int64          `json:"id,string"`
	OrderNumber     string         `json:"orderNumber"`
	UserID          string         `json:"userId"`
	Items           []OrderItem    `json:"items"`
	ShippingAddress Address        `json:"shippingAddress"`
	BillingAddress  Address        `json:"billingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	Notes           string         `json:"notes"`
	Subtotal        int64          `json:"subtotal"`
	TaxAmount       int64          `json:"taxAmount"`
	ShippingCost    int64          `json:"shippingCost"`
	TotalAmount     int64          `json:"totalAmount"`
	Status          string         `json:"status"`
	PaymentStatus   string         `json:"paymentStatus"`
	StatusHistory   []StatusChange `json:"statusHistory"`
	Version         int64          `json:"version"`
	Ctime           int64          `json:"ctime"`
	Utime           int64          `json:"utime"`
}

// CreateOrderReq 下单的用户就是当前登录的用户
type CreateOrderReq struct {
	// 请求去重，防止重复提交
	RequestID       string      `json:"requestId"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  *Address    `json:"billingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Notes           string      `json:"notes"`
}

type OrderIDReq struct {
	ID int64 `json:"id,string"`
}

type OrderNumberReq struct {
	OrderNumber string `json:"orderNumber"`
}

type ListOrdersReq struct {
	Status string `json:"status"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type UserOrdersReq struct {
	UserID string `json:"userId"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type ListOrdersResp struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
	Pages  int64   `json:"pages"`
}

type UpdateStatusReq struct {
	ID     int64  `json:"id,string"`
	Status string `json:"status"`
	Note   string `json:"note"`
	// 为 0 时不校验
	Version int64 `json:"version"`
}

type Revenue struct {
	TotalRevenue  int64 `json:"totalRevenue"`
	PaidOrders    int64 `json:"paidOrders"`
	AvgOrderValue int64 `json:"avgOrderValue"`
	TotalItems    int64 `json:"totalItems"`
}

type Summary struct {
	TotalOrders     int64            `json:"totalOrders"`
	StatusBreakdown map[string]int64 `json:"statusBreakdown"`
	Revenue         Revenue          `json:"revenue"`
}

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
	"github.com/shopspring/decimal"
)

// PricingConfig 对应配置 order.pricing，金额单位为分
type PricingConfig struct {
	TaxRate               float64 `yaml:"taxRate"`
	FreeShippingThreshold int64   `yaml:"freeShippingThreshold"`
	FlatShippingFee       int64   `yaml:"flatShippingFee"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TaxRate:               0.08,
		FreeShippingThreshold: 5000,
		FlatShippingFee:       999,
	}
}

type Pricing struct {
	Items        []OrderItem
	Subtotal     int64
	TaxAmount    int64
	ShippingCost int64
	TotalAmount  int64
}

type Pricer struct {
	taxRate   decimal.Decimal
	threshold int64
	flatFee   int64
}

func NewPricer(cfg PricingConfig) Pricer {
	return Pricer{
		taxRate:   decimal.NewFromFloat(cfg.TaxRate),
		threshold: cfg.FreeShippingThreshold,
		flatFee:   cfg.FlatShippingFee,
	}
}

// Price 计算订单金额。税费四舍五入到分，小计严格大于门槛时免运费
func (p Pricer) Price(items []OrderItem) Pricing {
	res := Pricing{Items: make([]OrderItem, 0, len(items))}
	for _, item := range items {
		item.TotalPrice = item.Quantity * item.UnitPrice
		res.Subtotal += item.TotalPrice
		res.Items = append(res.Items, item)
	}
	res.TaxAmount = decimal.NewFromInt(res.Subtotal).Mul(p.taxRate).Round(0).IntPart()
	if res.Subtotal <= p.threshold {
		res.ShippingCost = p.flatFee
	}
	res.TotalAmount = res.Subtotal + res.TaxAmount + res.ShippingCost
	return res
}

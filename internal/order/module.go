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

package order

import (
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/event"
	"github.com/ecodeclub/cloudcart/internal/order/internal/job"
	"github.com/ecodeclub/cloudcart/internal/order/internal/service"
	"github.com/ecodeclub/cloudcart/internal/order/internal/web"
)

type (
	Handler        = web.Handler
	Service        = service.Service
	Order          = domain.Order
	OrderStatus    = domain.OrderStatus
	Consumer       = event.Consumer
	RelayOutboxJob = job.RelayOutboxJob
)

// Config 对应配置 order
type Config struct {
	Pricing  domain.PricingConfig `yaml:"pricing"`
	Consumer event.ConsumerConfig `yaml:"consumer"`
	Outbox   job.OutboxConfig     `yaml:"outbox"`
	// 雪花算法的节点号，多个实例之间不能重复
	Node           int64         `yaml:"node"`
	PublishTimeout time.Duration `yaml:"publishTimeout"`
}

func DefaultConfig() Config {
	return Config{Pricing: domain.DefaultPricingConfig()}
}

type Module struct {
	Hdl            *Handler
	Svc            Service
	Consumer       *Consumer
	RelayOutboxJob *RelayOutboxJob
}

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

//go:build wireinject

package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/event"
	"github.com/ecodeclub/cloudcart/internal/order/internal/job"
	"github.com/ecodeclub/cloudcart/internal/order/internal/repository"
	"github.com/ecodeclub/cloudcart/internal/order/internal/repository/dao"
	"github.com/ecodeclub/cloudcart/internal/order/internal/service"
	"github.com/ecodeclub/cloudcart/internal/order/internal/web"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/ecodeclub/cloudcart/internal/pkg/sequencenumber"
	"github.com/ecodeclub/cloudcart/internal/pkg/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, b broker.Broker, cache ecache.Cache, cfg Config) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		initProducer,
		wire.Bind(new(service.EventPublisher), new(*event.Producer)),
		wire.Bind(new(job.EventRelayer), new(*event.Producer)),
		initIDGenerator,
		wire.Bind(new(service.IDGenerator), new(*snowflake.Generator)),
		sequencenumber.NewGenerator,
		wire.Bind(new(service.OrderNumberGenerator), new(*sequencenumber.Generator)),
		initPricer,
		service.NewService,
		web.NewHandler,
		initConsumer,
		initRelayOutboxJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initProducer(b broker.Broker, repo repository.OrderRepository, cfg Config) *event.Producer {
	return event.NewProducer(b, repo, cfg.PublishTimeout)
}

func initIDGenerator(cfg Config) (*snowflake.Generator, error) {
	return snowflake.NewGenerator(cfg.Node)
}

func initPricer(cfg Config) domain.Pricer {
	return domain.NewPricer(cfg.Pricing)
}

func initConsumer(b broker.Broker, svc service.Service, cfg Config) (*event.Consumer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := b.DeclareTopology(ctx, event.Topology()); err != nil {
		return nil, fmt.Errorf("声明订单事件的 exchange 和 queue 失败: %w", err)
	}
	c := event.NewConsumer(b, cfg.Consumer, event.NewHandlers(svc))
	c.Start(context.Background())
	return c, nil
}

func initRelayOutboxJob(svc service.Service, relayer job.EventRelayer, cfg Config) *job.RelayOutboxJob {
	return job.NewRelayOutboxJob(svc, relayer, cfg.Outbox)
}

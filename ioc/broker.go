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

package ioc

import (
	"fmt"

	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker/mqapi"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker/rabbitmq"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitBroker 默认使用 RabbitMQ，driver 为 kafka 时使用 mq-api
func InitBroker() broker.Broker {
	type Config struct {
		Driver   string          `yaml:"driver"`
		RabbitMQ rabbitmq.Config `yaml:"rabbitmq"`
		Kafka    struct {
			Network   string   `yaml:"network"`
			Addresses []string `yaml:"addresses"`
		} `yaml:"kafka"`
	}
	var cfg Config
	err := econf.UnmarshalKey("broker", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Driver {
	case "", "rabbitmq":
		return broker.NewTraceBroker(rabbitmq.NewBroker(cfg.RabbitMQ), "rabbitmq")
	case "kafka":
		q, err := kafka.NewMQ(cfg.Kafka.Network, cfg.Kafka.Addresses)
		if err != nil {
			panic(err)
		}
		elog.DefaultLogger.Warn("kafka 驱动在消费前即提交位点，进程崩溃时已预取未确认的消息会丢失，只有正常关闭会重新投递")
		return broker.NewTraceBroker(mqapi.NewBroker(q), "kafka")
	default:
		panic(fmt.Sprintf("未知的 broker driver: %s", cfg.Driver))
	}
}

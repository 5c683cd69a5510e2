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
	"github.com/ecodeclub/cloudcart/internal/order"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func initOrderModule(db *egorm.Component, b broker.Broker, cache ecache.Cache) (*order.Module, error) {
	cfg := order.DefaultConfig()
	err := econf.UnmarshalKey("order", &cfg)
	if err != nil {
		return nil, err
	}
	return order.InitModule(db, b, cache, cfg)
}

func initConsumers(om *order.Module) []Consumer {
	return []Consumer{
		om.Consumer,
	}
}

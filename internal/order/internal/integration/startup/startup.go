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

package startup

import (
	"github.com/ecodeclub/cloudcart/internal/order"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	testioc "github.com/ecodeclub/cloudcart/internal/test/ioc"
)

// InitModule 使用本地 MySQL、Redis 和内存版的 broker
func InitModule(b broker.Broker, cfg order.Config) (*order.Module, error) {
	return order.InitModule(testioc.InitDB(), b, testioc.InitCache(), cfg)
}

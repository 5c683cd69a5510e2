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

package testioc

import (
	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker/mqapi"
	"github.com/ecodeclub/mq-api/memory"
)

// InitBroker 每次返回一个新的内存实现，exchange 和 queue 由使用方声明
func InitBroker() broker.Broker {
	// 替换用内存实现，方便测试
	return mqapi.NewBroker(memory.NewMQ())
}

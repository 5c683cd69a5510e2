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

package service

import (
	"context"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
)

// EventPublisher 在事务提交之后调用，失败只记录日志，不会返回错误
//
//go:generate mockgen -source=./publisher.go -package=svcmocks -destination=./mocks/publisher.mock.go -typed EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, evt domain.Event)
}

type IDGenerator interface {
	Generate() int64
}

type OrderNumberGenerator interface {
	Generate(id int64) (string, error)
}

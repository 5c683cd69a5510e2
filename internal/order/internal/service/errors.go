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
	"errors"
	"fmt"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/repository"
)

var (
	ErrValidation        = domain.ErrValidation
	ErrInvalidTransition = domain.ErrInvalidTransition
	ErrNotFound          = repository.ErrOrderNotFound
	ErrConflict          = errors.New("订单并发冲突")
	ErrUnavailable       = errors.New("订单存储暂时不可用")
	ErrInternal          = errors.New("订单服务内部错误")
	// ErrEventAlreadyApplied 入站事件已经处理过
	ErrEventAlreadyApplied = repository.ErrDuplicatedEvent
)

func wrapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrEventAlreadyApplied):
		return err
	case errors.Is(err, repository.ErrVersionConflict), errors.Is(err, repository.ErrDuplicatedOrderNumber):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case repository.IsUnavailable(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

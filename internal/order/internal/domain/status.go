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
	"fmt"
	"slices"
)

// transitions 状态机，没有出边的状态即终态
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusRefunded},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return slices.Contains(transitions[s], target)
}

// AllowedTransitions 返回 from 可以流转到的状态
func AllowedTransitions(from OrderStatus) []OrderStatus {
	return slices.Clone(transitions[from])
}

// TransitionTo 修改状态并追加一条历史记录，不修改版本号
func (o *Order) TransitionTo(target OrderStatus, note string, now int64) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: 未知的订单状态 %q", ErrValidation, target)
	}
	if !o.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}
	if note == "" {
		note = "Status changed to " + target.String()
	}
	o.Status = target
	if target == StatusRefunded {
		o.PaymentStatus = PaymentStatusRefunded
	}
	o.StatusHistory = append(o.StatusHistory, StatusChange{
		Status: target,
		Note:   note,
		Ctime:  now,
	})
	o.Utime = now
	return nil
}

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

// Revenue 只统计已支付订单
type Revenue struct {
	TotalRevenue  int64
	PaidOrders    int64
	AvgOrderValue int64
	TotalItems    int64
}

type Summary struct {
	TotalOrders     int64
	StatusBreakdown map[OrderStatus]int64
	Revenue         Revenue
}

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
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Summary 每次都实时聚合，不做缓存
func (s *service) Summary(ctx context.Context) (domain.Summary, error) {
	var (
		eg        errgroup.Group
		total     int64
		breakdown map[domain.OrderStatus]int64
		revenue   domain.Revenue
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, domain.OrderFilter{})
		return err
	})
	eg.Go(func() error {
		var err error
		breakdown, err = s.repo.StatusBreakdown(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		revenue, err = s.repo.PaidRevenue(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Summary{}, wrapStoreErr(err)
	}

	res := domain.Summary{
		TotalOrders:     total,
		StatusBreakdown: make(map[domain.OrderStatus]int64, len(domain.OrderStatuses)),
		Revenue:         revenue,
	}
	for _, st := range domain.OrderStatuses {
		res.StatusBreakdown[st] = breakdown[st]
	}
	if revenue.PaidOrders > 0 {
		res.Revenue.AvgOrderValue = decimal.NewFromInt(revenue.TotalRevenue).
			Div(decimal.NewFromInt(revenue.PaidOrders)).
			Round(0).
			IntPart()
	}
	return res, nil
}

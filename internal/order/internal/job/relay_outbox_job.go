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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

type EventRelayer interface {
	Relay(ctx context.Context, evt domain.Event) error
}

type OutboxConfig struct {
	// 只补发创建时间早于 Grace 之前的事件，刚写入的事件由请求本身发送
	Grace   time.Duration `yaml:"grace"`
	Batch   int           `yaml:"batch"`
	Timeout time.Duration `yaml:"timeout"`
}

// RelayOutboxJob 补发还没有发送成功的订单事件
type RelayOutboxJob struct {
	svc     service.Service
	relayer EventRelayer
	cfg     OutboxConfig
	logger  *elog.Component
}

func NewRelayOutboxJob(svc service.Service, relayer EventRelayer, cfg OutboxConfig) *RelayOutboxJob {
	if cfg.Grace <= 0 {
		cfg.Grace = 30 * time.Second
	}
	if cfg.Batch <= 0 {
		cfg.Batch = 100
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &RelayOutboxJob{svc: svc, relayer: relayer, cfg: cfg, logger: elog.DefaultLogger}
}

func (j *RelayOutboxJob) Name() string {
	return "RelayOutboxJob"
}

func (j *RelayOutboxJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.cfg.Timeout)
	defer cancel()
	before := time.Now().Add(-j.cfg.Grace).UnixMilli()
	relayed := 0
	for {
		events, err := j.svc.ListUnsentEvents(ctx, before, j.cfg.Batch)
		if err != nil {
			return fmt.Errorf("查找待发送事件失败: %w", err)
		}
		failed := 0
		for _, evt := range events {
			if err = j.relayer.Relay(ctx, evt); err != nil {
				failed++
				j.logger.Warn("补发事件失败",
					elog.FieldErr(err),
					elog.String("eventId", evt.ID),
					elog.String("event", evt.Type))
				continue
			}
			relayed++
		}
		if failed > 0 {
			return fmt.Errorf("补发事件失败 %d 个，已补发 %d 个", failed, relayed)
		}
		if len(events) < j.cfg.Batch {
			break
		}
	}
	if relayed > 0 {
		j.logger.Info("补发事件完成", elog.Int("relayed", relayed))
	}
	return nil
}

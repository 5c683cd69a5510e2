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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
	"github.com/ecodeclub/cloudcart/internal/pkg/broker"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultPublishTimeout = 3 * time.Second

// ErrMarkSent 消息已经发出，但是 outbox 中的记录仍然是待发送
var ErrMarkSent = errors.New("标记事件已发送失败")

var publishCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "order",
	Name:      "event_publish_total",
	Help:      "订单事件发送次数",
}, []string{"event", "result"})

// SentMarker 发送成功之后标记 outbox 中的事件
type SentMarker interface {
	MarkEventSent(ctx context.Context, eventID string) error
}

type Producer struct {
	b       broker.Broker
	marker  SentMarker
	timeout time.Duration
	logger  *elog.Component
}

func NewProducer(b broker.Broker, marker SentMarker, timeout time.Duration) *Producer {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &Producer{
		b:       b,
		marker:  marker,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

// Publish 在事务提交之后调用，发送失败只记录日志，由 RelayOutboxJob 补发
func (p *Producer) Publish(ctx context.Context, evt domain.Event) {
	if err := p.Relay(ctx, evt); err != nil {
		p.logger.Warn("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("event", evt.Type),
			elog.String("eventId", evt.ID),
			elog.Int64("orderId", evt.AggregateID))
	}
}

// Relay 发送事件并标记为已发送，标记失败返回 ErrMarkSent
func (p *Producer) Relay(ctx context.Context, evt domain.Event) error {
	// 请求结束不应该打断发送
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()
	env, err := NewEnvelope(evt)
	if err != nil {
		publishCounter.WithLabelValues(evt.Type, "invalid").Inc()
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		publishCounter.WithLabelValues(evt.Type, "invalid").Inc()
		return fmt.Errorf("序列化事件失败: %w", err)
	}
	err = p.b.Publish(ctx, ExchangeOrderEvents, evt.Type, broker.Message{
		ID:          evt.ID,
		Body:        body,
		ContentType: "application/json",
		Timestamp:   time.UnixMilli(evt.Ctime),
	})
	if err != nil {
		publishCounter.WithLabelValues(evt.Type, "failed").Inc()
		return err
	}
	publishCounter.WithLabelValues(evt.Type, "success").Inc()
	// 标记失败的事件会被再次补发，消费方按照 eventId 去重
	if err = p.marker.MarkEventSent(ctx, evt.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrMarkSent, err)
	}
	return nil
}

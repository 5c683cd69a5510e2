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

package broker

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "internal/pkg/broker/tracing"

// TraceBroker 给发送消息打点
type TraceBroker struct {
	Broker
	system string
	tracer trace.Tracer
}

func NewTraceBroker(b Broker, system string) *TraceBroker {
	return &TraceBroker{
		Broker: b,
		system: system,
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (t *TraceBroker) Publish(ctx context.Context, exchange, routingKey string, msg Message) error {
	ctx, span := t.tracer.Start(ctx, exchange+" publish", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.system", t.system),
		attribute.String("messaging.operation", "publish"),
		attribute.String("messaging.destination.name", exchange),
		attribute.String("messaging.rabbitmq.destination.routing_key", routingKey),
		attribute.String("messaging.message.id", msg.ID),
		attribute.Int("messaging.message.body.size", len(msg.Body)),
	)

	err := t.Broker.Publish(ctx, exchange, routingKey, msg)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

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
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/cloudcart/internal/order/internal/domain"
)

const (
	ServiceName = "order-service"
	// 与 JavaScript 的 Date.toISOString 一致
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

var ErrMalformedEnvelope = errors.New("消息格式错误")

// Envelope 跨服务传递的消息
type Envelope struct {
	EventID   string          `json:"eventId"`
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
	Service   string          `json:"service"`
}

func NewEnvelope(evt domain.Event) (Envelope, error) {
	if evt.ID == "" || evt.Type == "" {
		return Envelope{}, fmt.Errorf("%w: eventId 和 event 不能为空", ErrMalformedEnvelope)
	}
	if !json.Valid(evt.Payload) {
		return Envelope{}, fmt.Errorf("%w: data 不是合法的 JSON", ErrMalformedEnvelope)
	}
	return Envelope{
		EventID:   evt.ID,
		Event:     evt.Type,
		Data:      evt.Payload,
		Timestamp: time.UnixMilli(evt.Ctime).UTC().Format(timestampLayout),
		Service:   ServiceName,
	}, nil
}

// DecodeEnvelope 没有 eventId 的消息使用消息体的摘要作为 eventId，
// 同一条消息重复投递时摘要相同
func DecodeEnvelope(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if env.Event == "" {
		return Envelope{}, fmt.Errorf("%w: 缺少 event", ErrMalformedEnvelope)
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || data[0] != '{' {
		return Envelope{}, fmt.Errorf("%w: data 必须是 JSON 对象", ErrMalformedEnvelope)
	}
	if env.EventID == "" {
		sum := sha256.Sum256(body)
		env.EventID = hex.EncodeToString(sum[:])
	}
	return env, nil
}

func (e Envelope) UnmarshalData(val any) error {
	if err := json.Unmarshal(e.Data, val); err != nil {
		return fmt.Errorf("%w: 解析 %s 的 data 失败: %w", ErrMalformedEnvelope, e.Event, err)
	}
	return nil
}

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

package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

// CachedTokenValidator 只缓存校验通过的结果
type CachedTokenValidator struct {
	next   TokenValidator
	cache  ecache.Cache
	ttl    time.Duration
	logger *elog.Component
}

func NewCachedTokenValidator(next TokenValidator, c ecache.Cache, ttl time.Duration) *CachedTokenValidator {
	return &CachedTokenValidator{
		next: next,
		cache: &ecache.NamespaceCache{
			Namespace: "auth:token:",
			C:         c,
		},
		ttl:    ttl,
		logger: elog.DefaultLogger,
	}
}

func (c *CachedTokenValidator) ValidateToken(ctx context.Context, token string) (Identity, error) {
	key := c.key(token)
	val := c.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		var id Identity
		if err := val.JSONScan(&id); err == nil && id.Role.IsValid() {
			return id, nil
		}
	}
	id, err := c.next.ValidateToken(ctx, token)
	if err != nil {
		return Identity{}, err
	}
	if err = c.set(ctx, key, id); err != nil {
		c.logger.Warn("缓存 token 失败", elog.FieldErr(err), elog.String("userId", id.UserID))
	}
	return id, nil
}

func (c *CachedTokenValidator) set(ctx context.Context, key string, id Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return errors.Wrap(err, "序列化身份信息失败")
	}
	return errors.Wrap(c.cache.Set(ctx, key, string(data), c.ttl), "写入缓存失败")
}

// key 不直接使用 token 作为 key
func (c *CachedTokenValidator) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

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
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type MiddlewareBuilder struct {
	v       TokenValidator
	ignored map[string]struct{}
	logger  *elog.Component
}

func NewMiddlewareBuilder(v TokenValidator) *MiddlewareBuilder {
	return &MiddlewareBuilder{
		v:       v,
		ignored: make(map[string]struct{}),
		logger:  elog.DefaultLogger,
	}
}

// IgnorePaths 不需要登录的路径
func (b *MiddlewareBuilder) IgnorePaths(paths ...string) *MiddlewareBuilder {
	for _, p := range paths {
		b.ignored[p] = struct{}{}
	}
	return b
}

func (b *MiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := b.ignored[ctx.Request.URL.Path]; ok {
			ctx.Next()
			return
		}
		token, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		id, err := b.v.ValidateToken(ctx.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, ErrInvalidToken):
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		default:
			b.logger.Error("校验 token 失败", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		SetIdentity(ctx, id)
		ctx.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

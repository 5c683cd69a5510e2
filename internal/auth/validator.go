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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gotomicro/ego/client/ehttp"
)

var (
	ErrInvalidToken = errors.New("token 非法")
	ErrUnavailable  = errors.New("认证服务不可用")
)

const validateTokenPath = "/api/auth/validate-token"

//go:generate mockgen -source=./validator.go -package=authmocks -destination=./mocks/validator.mock.go -typed TokenValidator
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (Identity, error)
}

// Config 认证服务地址与超时由 ehttp 组件读取，这里只保留缓存配置
type Config struct {
	// 校验通过的 token 的缓存时间，为 0 不缓存
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// HTTPTokenValidator 调用认证服务的 /api/auth/validate-token 接口
type HTTPTokenValidator struct {
	client *ehttp.Component
}

func NewHTTPTokenValidator(client *ehttp.Component) *HTTPTokenValidator {
	return &HTTPTokenValidator{client: client}
}

type validateTokenReq struct {
	Token string `json:"token"`
}

type validateTokenResp struct {
	Valid   bool     `json:"valid"`
	Message string   `json:"message"`
	User    Identity `json:"user"`
}

func (v *HTTPTokenValidator) ValidateToken(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, fmt.Errorf("%w: token 为空", ErrInvalidToken)
	}
	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(validateTokenReq{Token: token}).
		Post(validateTokenPath)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest, code == http.StatusUnauthorized:
		return Identity{}, ErrInvalidToken
	case code != http.StatusOK:
		return Identity{}, fmt.Errorf("%w: 响应码 %d", ErrUnavailable, code)
	}
	var res validateTokenResp
	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return Identity{}, fmt.Errorf("%w: 解析响应失败: %w", ErrUnavailable, err)
	}
	if !res.Valid || res.User.UserID == "" {
		return Identity{}, ErrInvalidToken
	}
	if !res.User.Role.IsValid() {
		return Identity{}, fmt.Errorf("%w: 未知的角色 %q", ErrInvalidToken, res.User.Role)
	}
	return res.User, nil
}

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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gotomicro/ego/client/ehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTokenValidator_ValidateToken(t *testing.T) {
	testCases := []struct {
		name    string
		token   string
		handler http.HandlerFunc
		want    Identity
		wantErr error
	}{
		{
			name:  "校验通过",
			token: "good",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req map[string]string
				_ = json.NewDecoder(r.Body).Decode(&req)
				if req["token"] != "good" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				_, _ = w.Write([]byte(`{"valid":true,"user":{"id":"u-1","email":"a@b.c","role":"admin"}}`))
			},
			want: Identity{UserID: "u-1", Email: "a@b.c", Role: RoleAdmin},
		},
		{
			name:  "token 过期",
			token: "expired",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"valid":false,"message":"Invalid token"}`))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name:  "未知角色",
			token: "good",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"valid":true,"user":{"id":"u-1","role":"root"}}`))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name:  "认证服务异常",
			token: "good",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: ErrUnavailable,
		},
		{
			name:    "token 为空",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			wantErr: ErrInvalidToken,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()
			v := NewHTTPTokenValidator(newClient(server.URL))
			id, err := v.ValidateToken(context.Background(), tc.token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestHTTPTokenValidator_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	_, err := NewHTTPTokenValidator(newClient(url)).ValidateToken(context.Background(), "good")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPTokenValidator_RequestPath(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		_, _ = w.Write([]byte(`{"valid":true,"user":{"id":"u-2","role":"user"}}`))
	}))
	defer server.Close()
	id, err := NewHTTPTokenValidator(newClient(server.URL)).ValidateToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "u-2", id.UserID)
	assert.Equal(t, "/api/auth/validate-token", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func newClient(addr string) *ehttp.Component {
	return ehttp.DefaultContainer().Build(
		ehttp.WithAddr(addr),
		ehttp.WithReadTimeout(time.Second),
		ehttp.WithEnableTraceInterceptor(false),
	)
}

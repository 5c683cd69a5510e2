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
	"github.com/gin-gonic/gin"
)

const identityKey = "_identity"

// Identity 由认证服务确认过的调用方
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (i Identity) Allowed(action Action) bool {
	return Allowed(i.Role, action)
}

// CanRead 只能查看自己的订单，除非有查看全部订单的权限
func (i Identity) CanRead(ownerID string) bool {
	if i.UserID != "" && i.UserID == ownerID {
		return i.Allowed(ActionReadOwnOrder)
	}
	return i.Allowed(ActionReadAnyOrder)
}

func SetIdentity(ctx *gin.Context, id Identity) {
	ctx.Set(identityKey, id)
}

func GetIdentity(ctx *gin.Context) (Identity, bool) {
	val, ok := ctx.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := val.(Identity)
	return id, ok
}

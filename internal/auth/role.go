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

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	_, ok := grants[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

type Action string

const (
	ActionCreateOrder       Action = "order:create"
	ActionReadOwnOrder      Action = "order:read:own"
	ActionReadAnyOrder      Action = "order:read:any"
	ActionUpdateOrderStatus Action = "order:status:update"
	ActionReadAnalytics     Action = "order:analytics:read"
)

var grants = map[Role]map[Action]struct{}{
	RoleUser: {
		ActionCreateOrder:  {},
		ActionReadOwnOrder: {},
	},
	RoleModerator: {
		ActionCreateOrder:       {},
		ActionReadOwnOrder:      {},
		ActionReadAnyOrder:      {},
		ActionUpdateOrderStatus: {},
	},
	RoleAdmin: {
		ActionCreateOrder:       {},
		ActionReadOwnOrder:      {},
		ActionReadAnyOrder:      {},
		ActionUpdateOrderStatus: {},
		ActionReadAnalytics:     {},
	},
}

// Allowed 未知的角色没有任何权限
func Allowed(role Role, action Action) bool {
	_, ok := grants[role][action]
	return ok
}

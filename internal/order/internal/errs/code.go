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

package errs

var (
	SystemError       = ErrorCode{Code: 507001, Msg: "系统错误"}
	InvalidParam      = ErrorCode{Code: 507002, Msg: "参数错误"}
	OrderNotFound     = ErrorCode{Code: 507003, Msg: "订单不存在"}
	InvalidTransition = ErrorCode{Code: 507004, Msg: "订单当前状态不允许该操作"}
	OrderConflict     = ErrorCode{Code: 507005, Msg: "订单已被修改，请刷新后重试"}
	DuplicateRequest  = ErrorCode{Code: 507006, Msg: "重复提交"}
	ServiceBusy       = ErrorCode{Code: 507007, Msg: "服务繁忙，请稍后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

// NewInvalidParamErr 携带具体的校验信息
func NewInvalidParamErr(err error) ErrorCode {
	return ErrorCode{Code: InvalidParam.Code, Msg: err.Error()}
}

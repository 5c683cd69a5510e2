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

package web

import (
	"errors"

	"github.com/ecodeclub/cloudcart/internal/order/internal/errs"
	"github.com/ecodeclub/cloudcart/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func result(code errs.ErrorCode) ginx.Result {
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}

// errorResult 调用方的错误返回业务错误码，其余按照系统错误处理
func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return result(errs.NewInvalidParamErr(err)), nil
	case errors.Is(err, service.ErrNotFound):
		return result(errs.OrderNotFound), nil
	case errors.Is(err, service.ErrInvalidTransition):
		return result(errs.InvalidTransition), nil
	case errors.Is(err, service.ErrConflict):
		return result(errs.OrderConflict), nil
	case errors.Is(err, service.ErrUnavailable):
		return result(errs.ServiceBusy), err
	default:
		return systemErrorResult, err
	}
}

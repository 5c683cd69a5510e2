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

package ioc

import (
	"github.com/ecodeclub/cloudcart/internal/auth"
	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/gotomicro/ego/core/econf"
)

func InitTokenValidator(cache ecache.Cache) auth.TokenValidator {
	var cfg auth.Config
	err := econf.UnmarshalKey("auth", &cfg)
	if err != nil {
		panic(err)
	}
	var v auth.TokenValidator = auth.NewHTTPTokenValidator(ehttp.Load("auth").Build())
	if cfg.CacheTTL > 0 {
		v = auth.NewCachedTokenValidator(v, cache, cfg.CacheTTL)
	}
	return v
}

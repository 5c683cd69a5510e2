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
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/cloudcart/internal/auth"
	"github.com/ecodeclub/cloudcart/internal/order"
	"github.com/ecodeclub/cloudcart/internal/pkg/middleware"
	"github.com/ego-component/egorm"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

const (
	healthPath = "/health"
	readyPath  = "/ready"
)

func initGinxServer(db *egorm.Component,
	v auth.TokenValidator,
	om *order.Module,
) *egin.Component {
	res := egin.Load("server.http").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().IgnorePaths(healthPath, readyPath).Build())
	res.GET(healthPath, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK", "service": "order-service"})
	})
	res.GET(readyPath, readyHandler(db))
	om.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(auth.NewMiddlewareBuilder(v).IgnorePaths(healthPath, readyPath).Build())
	om.Hdl.PrivateRoutes(res.Engine)
	return res
}

// readyHandler 数据库可用才能接收请求
func readyHandler(db *egorm.Component) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c)
		}
		if err != nil {
			elog.DefaultLogger.Warn("数据库不可用", elog.FieldErr(err))
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "NOT_READY"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "READY"})
	}
}

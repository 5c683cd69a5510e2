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

package sequencenumber

import (
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const (
	prefix     = "ORD"
	randLength = 8
)

// TimeFunc 定义获取当前时间的函数类型
type TimeFunc func() time.Time

// ShortUUIDGenerateFunc 定义生成ShortUUID的函数类型
type ShortUUIDGenerateFunc func() string

// Generator 生成面向用户展示的订单号
type Generator struct {
	now       TimeFunc
	shortUUID ShortUUIDGenerateFunc
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(now TimeFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		now:       now,
		shortUUID: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, shortuuid.New)
}

// Generate 格式为 ORD-日期-ID后四位-随机串，例如 ORD-20240102-6789-nUfojcH2。
// 唯一性最终由数据库唯一索引保证
func (s *Generator) Generate(id int64) (string, error) {
	random := s.shortUUID()
	if len(random) < randLength {
		return "", fmt.Errorf("随机串长度不足: %q", random)
	}
	if id < 0 {
		id = -id
	}
	return strings.Join([]string{
		prefix,
		s.now().UTC().Format("20060102"),
		fmt.Sprintf("%04d", id%10000),
		random[:randLength],
	}, "-"), nil
}

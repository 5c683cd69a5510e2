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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// +------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp | 10 Bit Node | 12 Bit Seq |
// +------------------------------------------------------------+

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

// Generator 生成全局唯一、按时间递增的 ID，可以并发使用
type Generator struct {
	node *snowflake.Node
}

// NewGenerator node 需要在部署的多个实例之间保持唯一
func NewGenerator(node int64) (*Generator, error) {
	if node < 0 || node > maxNode {
		return nil, fmt.Errorf("%w: node=%d", ErrExceedNode, node)
	}
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, err
	}
	return &Generator{node: n}, nil
}

func (g *Generator) Generate() int64 {
	return g.node.Generate().Int64()
}

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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateWith(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC) }
	sng := NewGeneratorWith(now, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "不足四位补零",
			input:    1,
			expected: "ORD-20240102-0001-nUfojcH2",
		},
		{
			name:     "取后四位",
			input:    123456789,
			expected: "ORD-20240102-6789-nUfojcH2",
		},
		{
			name:     "后四位全为零",
			input:    123450000,
			expected: "ORD-20240102-0000-nUfojcH2",
		},
		{
			name:     "负数",
			input:    -42,
			expected: "ORD-20240102-0042-nUfojcH2",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sn)
		})
	}
}

func TestGenerator_ShortRandom(t *testing.T) {
	sng := NewGeneratorWith(time.Now, func() string { return "abc" })
	_, err := sng.Generate(1)
	assert.Error(t, err)
}

func TestGenerator_Generate(t *testing.T) {
	sng := NewGenerator()
	a, err := sng.Generate(123456789)
	require.NoError(t, err)
	b, err := sng.Generate(123456789)
	require.NoError(t, err)
	assert.Len(t, a, len("ORD-20240102-6789-nUfojcH2"))
	assert.Contains(t, a, "-6789-")
	assert.NotEqual(t, a, b)
}

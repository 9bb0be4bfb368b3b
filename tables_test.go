/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionSize(t *testing.T) {
	assert.Equal(t, 21, Version(1).Size())
	assert.Equal(t, 177, Version(40).Size())
}

func TestNumDataCodewords(t *testing.T) {
	cases := [][3]int{
		{3, 1, 44},
		{3, 2, 34},
		{3, 3, 26},
		{6, 0, 136},
		{7, 0, 156},
		{9, 0, 232},
		{15, 0, 523},
		{21, 0, 932},
		{22, 3, 442},
		{33, 3, 901},
		{40, 1, 2334},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestNumDataCodewords %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], numDataCodewords[tc[1]][tc[0]])
		})
	}
}

func TestNumRawDataModules(t *testing.T) {
	cases := [][2]int{
		{1, 208},
		{2, 359},
		{3, 567},
		{6, 1383},
		{7, 1568},
		{12, 3728},
		{15, 5243},
		{22, 10068},
		{32, 19723},
		{40, 29648},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestNumRawDataModules %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[1], numRawDataModules[tc[0]])
		})
	}
}

func TestAlignmentPatternPositions(t *testing.T) {
	cases := []struct {
		version Version
		want    []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{3, []int{6, 22}},
		{6, []int{6, 34}},
		{7, []int{6, 22, 38}},
		{32, []int{6, 34, 60, 86, 112, 138}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestAlignmentPatternPositions %v", tc.version), func(t *testing.T) {
			assert.Equal(t, tc.want, alignmentPatternPositions[tc.version])
		})
	}
}
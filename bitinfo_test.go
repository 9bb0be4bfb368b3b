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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildBitInfoCoversEveryCell(t *testing.T) {
	overlay := buildBitInfo(1, Low)
	size := len(overlay)
	assert.Equal(t, Version(1).Size(), size)

	counts := map[Phase]int{}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			counts[overlay[y][x].Phase]++
		}
	}

	layout := computeBlockLayout(1, Low)
	wantDataBits := numDataCodewords[Low][1] * 8
	wantECBits := layout.eccLen * layout.numBlocks * 8
	assert.Equal(t, wantDataBits, counts[PhaseData])
	assert.Equal(t, wantECBits, counts[PhaseEC])
}

func TestBuildBitInfoMatchesInterleaveOrder(t *testing.T) {
	// For a single-block version, a cell's data BitIndex walked in zig-zag
	// order must be strictly increasing, since interleaveMeta emits a
	// single block's bits in column-major (== byte, then bit) order with
	// nothing to interleave against.
	overlay := buildBitInfo(1, Low)
	size := len(overlay)

	last := -1
	for _, p := range zigZagOrder(size) {
		info := overlay[p.y][p.x]
		if info.Phase != PhaseData {
			continue
		}
		assert.Greater(t, info.BitIndex, last)
		last = info.BitIndex
	}
}

func TestBuildBitInfoFixedCellsHaveNoBlock(t *testing.T) {
	overlay := buildBitInfo(1, Low)
	// The dark module at (size-8, 8) relative indexing: (row, col) = (size-8,
	// 8) is always a FORMAT-role fixed cell.
	size := len(overlay)
	assert.Equal(t, PhaseFixed, overlay[size-8][8].Phase)
}
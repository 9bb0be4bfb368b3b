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

// Phase classifies a module cell for the bit-info overlay: whether it
// belongs to a fixed pattern, a data codeword, an error-correction
// codeword, or the trailing remainder bits some versions carry.
type Phase int8

const (
	PhaseFixed Phase = iota
	PhaseData
	PhaseEC
	PhaseRemainder
)

// BitInfo tags one data-walk cell with where its bit lives in the per-block
// view the qart solver operates on, per spec §4.8. Block/BitIndex are
// meaningless for PhaseFixed/PhaseRemainder cells.
type BitInfo struct {
	Phase    Phase
	Block    int
	BitIndex int // bit position within the block's own data or EC byte slice, MSB-first
}

// interleaveMeta mirrors blockLayout.interleave's loop nesting exactly,
// bit by bit, so the overlay built from it is a true inverse of the
// interleave math used at encode time (spec §4.8's explicit requirement,
// and spec §9's warning against re-deriving this mapping from scratch by
// any other route).
func (l blockLayout) interleaveMeta() []BitInfo {
	longBlockLen := l.shortBlockLen + 1
	out := make([]BitInfo, 0, l.numBlocks*longBlockLen*8+l.eccLen*l.numBlocks*8)

	for col := 0; col < longBlockLen; col++ {
		for row := 0; row < l.numBlocks; row++ {
			if col == l.shortBlockLen && row < l.numShortBlocks {
				continue
			}
			for k := 0; k < 8; k++ {
				out = append(out, BitInfo{Phase: PhaseData, Block: row, BitIndex: col*8 + k})
			}
		}
	}
	for col := 0; col < l.eccLen; col++ {
		for row := 0; row < l.numBlocks; row++ {
			for k := 0; k < 8; k++ {
				out = append(out, BitInfo{Phase: PhaseEC, Block: row, BitIndex: col*8 + k})
			}
		}
	}
	return out
}

// buildBitInfo constructs the parallel (x,y) -> BitInfo overlay for a
// version/ECL, per spec §4.8. It walks the identical zig-zag order and
// fixed-pattern layout that placeData uses, so overlay[y][x] names exactly
// the bit that placeData would have written into that cell.
func buildBitInfo(version Version, ecl ECL) [][]BitInfo {
	base := buildMatrix(version)
	size := len(base)
	overlay := make([][]BitInfo, size)
	for i := range overlay {
		overlay[i] = make([]BitInfo, size)
	}

	layout := computeBlockLayout(version, ecl)
	meta := layout.interleaveMeta()

	idx := 0
	for _, p := range zigZagOrder(size) {
		if base[p.y][p.x].HasRole() {
			overlay[p.y][p.x] = BitInfo{Phase: PhaseFixed}
			continue
		}
		if idx < len(meta) {
			overlay[p.y][p.x] = meta[idx]
			idx++
		} else {
			overlay[p.y][p.x] = BitInfo{Phase: PhaseRemainder}
		}
	}
	return overlay
}

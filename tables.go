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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrcode

// Version is a QR symbol version in [1, 40]; symbol side length is 4V+17.
type Version int8

const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// Size returns the module width/height of a symbol of this version.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// The ISO/IEC 18004 annex tables this package is built on: per (ECL,
// version) error-correction codeword count, per-block count, and per-version
// raw (pre-remainder) module count. Kept byte-for-byte from the teacher's
// package.go (eccCodeWordsPerBlock / numErrorCorrectionBlocks) — these are
// the standard's own published constants, not something to re-derive.
var (
	eccCodeWordsPerBlock = [4][41]int{
		//      0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	}

	numErrorCorrectionBlocks = [4][41]int{
		//      0, 1, 2, 3, 4, 5, 6, 7, 8, 9,10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
	}

	numRawDataModules [41]int
	numDataCodewords  [4][41]int

	alignmentPatternPositions [41][]int
)

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("qrcode: numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodeWordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}

	for _, e := range []ECL{Low, Medium, Quartile, High} {
		for v := 1; v <= 40; v++ {
			gfGeneratorPoly(eccCodeWordsPerBlock[e][v])
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentPatternPositions[v] = computeAlignmentPatternPositions(Version(v))
	}
}

// computeAlignmentPatternPositions returns the ascending coordinate list used
// on both axes for a version's alignment-pattern grid (spec §4.7 step 2).
// The teacher computes this algorithmically (getAlignmentPatternPositions in
// qrcode.go) rather than from a literal 34-row stride table; this rendition
// keeps that approach — it reproduces the same per-version sets the
// teacher's own TestGetAlignmentPatternPositions asserts — and documents the
// equivalence here rather than inlining a 34-entry literal.
func computeAlignmentPatternPositions(v Version) []int {
	if v == 1 {
		return nil
	}
	numAlign := int(v)/7 + 2
	var step int
	if v == 32 {
		step = 26
	} else {
		step = (int(v)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}
	result := make([]int, numAlign)
	result[0] = 6
	pos := int(v)*4 + 17 - 7
	for i := numAlign - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func bToI(b bool) int {
	if b {
		return 1
	}
	return 0
}

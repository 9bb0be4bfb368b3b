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

// Mask selects one of the eight XOR patterns applied to data modules. -1
// (MaskAuto) requests scoring-based selection.
type Mask int8

const MaskAuto Mask = -1

const (
	M0 Mask = iota
	M1
	M2
	M3
	M4
	M5
	M6
	M7
)

// maskFuncs are the eight predicates of spec §4.7: predicate true means flip
// the data module's ON bit. Ground truth is the teacher's applyMask switch
// in qrcode.go, extracted into a function table so mask scoring (which must
// evaluate all eight) and final application share one source of truth.
var maskFuncs = [8]func(r, c int) bool{
	func(r, c int) bool { return (r+c)%2 == 0 },
	func(r, c int) bool { return r%2 == 0 },
	func(r, c int) bool { return c%3 == 0 },
	func(r, c int) bool { return (r+c)%3 == 0 },
	func(r, c int) bool { return (r/2+c/3)%2 == 0 },
	func(r, c int) bool { return r*c%2+r*c%3 == 0 },
	func(r, c int) bool { return (r*c%2+r*c%3)%2 == 0 },
	func(r, c int) bool { return ((r+c)%2+r*c%3)%2 == 0 },
}

func (m Mask) apply(row, col int) bool {
	return maskFuncs[m](row, col)
}

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// penaltyScore computes the ISO §4.7 four-component penalty for the symbol
// as currently masked. Grounded on the teacher's getPenaltyScore /
// finderPenalty* trio (qrcode.go), rewritten against the Module grid so a
// cell's "black" reading is m.On() rather than a raw module==1 comparison.
func penaltyScore(mat [][]Module) int {
	size := len(mat)
	total := 0

	var runHistory [7]int
	addHistory := func(run int, hist *[7]int) {
		if hist[0] == 0 {
			run += size
		}
		copy(hist[1:], hist[0:6])
		hist[0] = run
	}
	countFinderLike := func(hist *[7]int) int {
		n := hist[1]
		core := n > 0 && hist[2] == n && hist[3] == n*3 && hist[4] == n && hist[5] == n
		return bToI(core && hist[0] >= n*4 && hist[6] >= n) + bToI(core && hist[6] >= n*4 && hist[0] >= n)
	}
	terminate := func(runColor bool, runLen int, hist *[7]int) int {
		if runColor {
			addHistory(runLen, hist)
			runLen = 0
		}
		runLen += size
		addHistory(runLen, hist)
		return countFinderLike(hist)
	}

	// N1/N3 across rows.
	for y := 0; y < size; y++ {
		runColor := false
		runLen := 0
		runHistory = [7]int{}
		for x := 0; x < size; x++ {
			c := mat[y][x].On()
			if c == runColor {
				runLen++
				if runLen == 5 {
					total += penaltyN1
				} else if runLen > 5 {
					total++
				}
			} else {
				addHistory(runLen, &runHistory)
				if !runColor {
					total += countFinderLike(&runHistory) * penaltyN3
				}
				runColor = c
				runLen = 1
			}
		}
		total += terminate(runColor, runLen, &runHistory) * penaltyN3
	}

	// N1/N3 across columns.
	for x := 0; x < size; x++ {
		runColor := false
		runLen := 0
		runHistory = [7]int{}
		for y := 0; y < size; y++ {
			c := mat[y][x].On()
			if c == runColor {
				runLen++
				if runLen == 5 {
					total += penaltyN1
				} else if runLen > 5 {
					total++
				}
			} else {
				addHistory(runLen, &runHistory)
				if !runColor {
					total += countFinderLike(&runHistory) * penaltyN3
				}
				runColor = c
				runLen = 1
			}
		}
		total += terminate(runColor, runLen, &runHistory) * penaltyN3
	}

	// N2: 2x2 same-colour blocks.
	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			c := mat[y][x].On()
			if c == mat[y][x+1].On() && c == mat[y+1][x].On() && c == mat[y+1][x+1].On() {
				total += penaltyN2
			}
		}
	}

	// N4: dark proportion.
	dark := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if mat[y][x].On() {
				dark++
			}
		}
	}
	// Matches the teacher's getPenaltyScore: k is the smallest integer such
	// that (45-5k)% <= dark/total <= (55+5k)%, computed without floating
	// point via a ceiling division.
	modules := size * size
	k := (abs(dark*20-modules*10)+modules-1)/modules - 1
	total += k * penaltyN4

	return total
}

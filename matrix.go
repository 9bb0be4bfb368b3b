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

// point is a module coordinate, (x=col, y=row).
type point struct{ x, y int }

// zigZagOrder returns every coordinate of a size×size symbol outside
// column 6 in the data zig-zag walk order of spec §4.7 step 6: starting
// from the bottom-right corner, climbing in two-column strips, flipping
// vertical direction each strip, and skipping column 6 (the vertical timing
// pattern) entirely, so size*(size-1) points are returned.
// Ground truth is the teacher's drawCodewords loop (qrcode.go); this
// extracts the coordinate sequence on its own so matrix.go's placeData and
// bitinfo.go's overlay walk the identical order without duplicating it.
func zigZagOrder(size int) []point {
	pts := make([]point, 0, size*size)
	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		upward := (right+1)&2 == 0
		for vert := 0; vert < size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				var y int
				if upward {
					y = size - 1 - vert
				} else {
					y = vert
				}
				pts = append(pts, point{x, y})
			}
		}
	}
	return pts
}

// newMatrix allocates a blank size×size module grid.
func newMatrix(size int) [][]Module {
	mat := make([][]Module, size)
	for i := range mat {
		mat[i] = make([]Module, size)
	}
	return mat
}

// setFinder draws a 7x7 finder pattern plus its separator ring, with the
// finder's top-left corner at (left, top) and the separator's overhang
// clipped to the grid, per spec §4.7
// step 1. Ground truth: the teacher's drawFinderPattern (qrcode.go), which
// draws the finder+separator as one 9x9 sweep centered on a inset point;
// this rewrite drives it directly off the finder's true top-left corner and
// tags a FINDER_CENTER modifier on the inner 3x3 as spec requires (the
// teacher's IsFunction bool grid has no equivalent, since it only needs
// on/off, not a modifier bit).
func setFinder(mat [][]Module, top, left int) {
	size := len(mat)
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			y, x := top+dy, left+dx
			if y < 0 || y >= size || x < 0 || x >= size {
				continue
			}
			switch {
			case dy == -1 || dy == 7 || dx == -1 || dx == 7:
				mat[y][x] = mat[y][x].WithRole(roleFinder).SetOn(false)
			case dy == 0 || dy == 6 || dx == 0 || dx == 6:
				mat[y][x] = mat[y][x].WithRole(roleFinder).SetOn(true)
			case dy >= 2 && dy <= 4 && dx >= 2 && dx <= 4:
				mat[y][x] = mat[y][x].WithRole(roleFinder).WithModifier().SetOn(true)
			default:
				mat[y][x] = mat[y][x].WithRole(roleFinder).SetOn(false)
			}
		}
	}
}

// setAlignment draws a 5x5 alignment ring with a solid center, center at
// (cy, cx), per spec §4.7 step 2. Ground truth: drawAlignmentPattern
// (qrcode.go).
func setAlignment(mat [][]Module, cy, cx int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			y, x := cy+dy, cx+dx
			onRing := maxInt(abs(dx), abs(dy)) != 1
			m := mat[y][x].WithRole(roleAlignment)
			if dx == 0 && dy == 0 {
				m = m.WithModifier()
			}
			mat[y][x] = m.SetOn(onRing)
		}
	}
}

// placeAlignmentPatterns draws every alignment pattern for version except
// the three that would overlap a finder corner, per spec §4.7 step 2.
func placeAlignmentPatterns(mat [][]Module, version Version) {
	pos := alignmentPatternPositions[version]
	n := len(pos)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue
			}
			setAlignment(mat, pos[i], pos[j])
		}
	}
}

// placeTiming draws the alternating row-6/col-6 timing patterns, per spec
// §4.7 step 3. Ground truth: the teacher draws timing before finders/
// alignment and lets later passes overwrite it (qrcode.go
// drawFunctionPatterns); this rendition draws timing last among the three
// instead, so a cell row 6/col 6 shares with a finder or alignment pattern
// keeps whatever role placed it first and is left untouched here — Module's
// one-role-per-cell invariant (module.go) means timing can never re-role a
// cell another fixed pattern already claimed.
func placeTiming(mat [][]Module) {
	size := len(mat)
	for i := 0; i < size; i++ {
		on := i%2 == 0
		if !mat[6][i].HasRole() {
			mat[6][i] = mat[6][i].WithRole(roleTiming).SetOn(on)
		}
		if !mat[i][6].HasRole() {
			mat[i][6] = mat[i][6].WithRole(roleTiming).SetOn(on)
		}
	}
}

// reserveFormat tags the 2x15+1 format-info cells (+ the always-on dark
// module) with the FORMAT role so placeData skips them; bits are written
// later by writeFormatInfo once the mask is known. Coordinates per spec
// §4.7 step 4 / the teacher's drawFormatBits.
func reserveFormat(mat [][]Module) {
	size := len(mat)
	for i := 0; i <= 5; i++ {
		mat[i][8] = mat[i][8].WithRole(roleFormat)
	}
	mat[7][8] = mat[7][8].WithRole(roleFormat)
	mat[8][8] = mat[8][8].WithRole(roleFormat)
	mat[8][7] = mat[8][7].WithRole(roleFormat)
	for i := 9; i < 15; i++ {
		mat[8][14-i] = mat[8][14-i].WithRole(roleFormat)
	}
	for i := 0; i < 8; i++ {
		mat[8][size-1-i] = mat[8][size-1-i].WithRole(roleFormat).WithModifier()
	}
	for i := 8; i < 15; i++ {
		mat[size-15+i][8] = mat[size-15+i][8].WithRole(roleFormat).WithModifier()
	}
	mat[size-8][8] = mat[size-8][8].WithRole(roleFormat).SetOn(true)
}

// writeFormatInfo computes the 15-bit BCH(15,5) format codeword for
// (ecl, mask) and writes both copies, per spec §4.7 step 4. Ground truth:
// the teacher's drawFormatBits polynomial-remainder loop (qrcode.go).
func writeFormatInfo(mat [][]Module, ecl ECL, mask Mask) {
	size := len(mat)
	bits := formatInfoBits(ecl, mask)

	set := func(y, x, bitIdx int) {
		on := bits>>uint(bitIdx)&1 == 1
		mat[y][x] = mat[y][x].SetOn(on)
	}
	for i := 0; i <= 5; i++ {
		set(i, 8, i)
	}
	set(7, 8, 6)
	set(8, 8, 7)
	set(8, 7, 8)
	for i := 9; i < 15; i++ {
		set(8, 14-i, i)
	}
	for i := 0; i < 8; i++ {
		set(8, size-1-i, i)
	}
	for i := 8; i < 15; i++ {
		set(size-15+i, 8, i)
	}
	mat[size-8][8] = mat[size-8][8].SetOn(true)
}

// formatInfoBits computes the 15-bit BCH(15,5) format codeword spec §4.7
// step 4 describes: a 5-bit (ECL, mask) payload followed by its 10-bit BCH
// remainder, XORed with the 0x5412 scrambler mask. Split out from
// writeFormatInfo so it can be tested against spec §8's concrete format
// words directly.
func formatInfoBits(ecl ECL, mask Mask) int {
	data := ecl.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ (rem>>9)*0x537
	}
	return (data<<10 | rem) ^ 0x5412
}

// reserveVersion tags the two 3x6 version-info blocks (V >= 7 only) with the
// VERSION role.
func reserveVersion(mat [][]Module, version Version) {
	if version < 7 {
		return
	}
	size := len(mat)
	for i := 0; i < 18; i++ {
		a := size - 11 + i%3
		b := i / 3
		mat[b][a] = mat[b][a].WithRole(roleVersion)
		mat[a][b] = mat[a][b].WithRole(roleVersion)
	}
}

// writeVersionInfo computes the 18-bit Golay(18,6) version codeword and
// writes both copies, per spec §4.7 step 5. Ground truth: drawVersion
// (qrcode.go).
func writeVersionInfo(mat [][]Module, version Version) {
	if version < 7 {
		return
	}
	size := len(mat)
	bits := versionInfoBits(version)

	for i := 0; i < 18; i++ {
		on := bits>>uint(i)&1 == 1
		a := size - 11 + i%3
		b := i / 3
		mat[b][a] = mat[b][a].SetOn(on)
		mat[a][b] = mat[a][b].SetOn(on)
	}
}

// versionInfoBits computes the 18-bit Golay(18,6) version codeword spec
// §4.7 step 5 describes: the 6-bit version number followed by its 12-bit
// Golay remainder. Split out from writeVersionInfo for direct testing
// against spec §8's concrete version words.
func versionInfoBits(version Version) int {
	rem := int(version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ (rem>>11)*0x1F25
	}
	return int(version)<<12 | rem
}

// placeData walks the zig-zag order and writes the interleaved codeword
// stream's bits, MSB-first, into every cell that has no role yet, per spec
// §4.7 step 6. Any trailing remainder bits (cells visited after the
// codeword stream is exhausted) are left OFF.
func placeData(mat [][]Module, codewords []byte) {
	totalBits := len(codewords) * 8
	bit := 0
	for _, p := range zigZagOrder(len(mat)) {
		if mat[p.y][p.x].HasRole() {
			continue
		}
		on := false
		if bit < totalBits {
			on = (codewords[bit/8]>>uint(7-bit%8))&1 == 1
			bit++
		}
		mat[p.y][p.x] = mat[p.y][p.x].WithRole(roleData).SetOn(on)
	}
	if bit != totalBits {
		panic("qrcode: placeData did not consume the full codeword stream")
	}
}

// applyMask XORs mask's predicate into every DATA-role cell's ON bit, per
// spec §4.7 step 7. Ground truth: the teacher's applyMask (qrcode.go),
// restricted here to roleData via Module.IsData rather than a parallel
// IsFunction grid.
func applyMask(mat [][]Module, mask Mask) {
	for y := range mat {
		for x := range mat[y] {
			if mat[y][x].IsData() {
				mat[y][x] = mat[y][x].XorOn(mask.apply(y, x))
			}
		}
	}
}

// buildMatrix assembles the full structural layout (finders, alignment,
// timing, reserved format/version cells) for a version, shared by every
// mask trial so penalty scoring never re-derives the fixed patterns.
func buildMatrix(version Version) [][]Module {
	size := version.Size()
	mat := newMatrix(size)
	setFinder(mat, 0, 0)
	setFinder(mat, 0, size-7)
	setFinder(mat, size-7, 0)
	placeAlignmentPatterns(mat, version)
	placeTiming(mat)
	reserveFormat(mat)
	reserveVersion(mat, version)
	return mat
}

// cloneMatrix deep-copies mat for a mask trial.
func cloneMatrix(mat [][]Module) [][]Module {
	out := make([][]Module, len(mat))
	for i, row := range mat {
		out[i] = append([]Module(nil), row...)
	}
	return out
}

// chooseMask places codewords onto a fresh copy of base for every candidate
// mask (or just the one fixed mask), scores each with penaltyScore, and
// returns the lowest-penalty matrix with format/version info finalized, per
// spec §4.7's mask-selection rule (ISO §8.8.2) and the teacher's
// handleConstructorMasking.
func chooseMask(base [][]Module, codewords []byte, ecl ECL, version Version, fixed Mask) (Mask, [][]Module) {
	candidates := []Mask{M0, M1, M2, M3, M4, M5, M6, M7}
	if fixed != MaskAuto {
		candidates = []Mask{fixed}
	}

	best := candidates[0]
	var bestMat [][]Module
	bestPenalty := -1
	for _, m := range candidates {
		mat := cloneMatrix(base)
		placeData(mat, codewords)
		applyMask(mat, m)
		writeFormatInfo(mat, ecl, m)
		writeVersionInfo(mat, version)
		p := penaltyScore(mat)
		logger.Debug().Int8("mask", int8(m)).Int("penalty", p).Msg("scored mask candidate")
		if bestPenalty == -1 || p < bestPenalty {
			bestPenalty = p
			best = m
			bestMat = mat
		}
	}
	return best, bestMat
}

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

// qartBlockState tracks one RS block's Gaussian-elimination basis while the
// solver steers it toward a weighted image, per spec §4.9. pool holds the
// still-available basis vectors (one per free data bit, each a full
// data||EC codeword so XOR-ing it into current always lands on another
// valid codeword); current is the block's codeword-in-progress.
//
// This exploits GF(256) Reed–Solomon remainder being GF(2)-linear in the
// message: XOR-summing codewords whose data portions are GF(2) unit
// vectors reproduces the remainder of the XOR-summed data, so flipping
// bits via basis elimination never leaves the RS relation.
type qartBlockState struct {
	pool    [][]byte
	current []byte
}

func newQartBlockState(dataBlock, eccBlock, gen []byte) *qartBlockState {
	dataLen := len(dataBlock)
	total := dataLen + len(eccBlock)

	current := make([]byte, total)
	copy(current, dataBlock)
	copy(current[dataLen:], eccBlock)

	dataBits := dataLen * 8
	pool := make([][]byte, dataBits)
	for i := 0; i < dataBits; i++ {
		unit := make([]byte, dataLen)
		unit[i/8] = 1 << uint(7-i%8)
		buf := make([]byte, total)
		copy(buf, unit)
		copy(buf[dataLen:], rsRemainder(unit, gen))
		pool[i] = buf
	}

	return &qartBlockState{pool: pool, current: current}
}

// steer pivots bit flat of the block to desired if any basis vector still
// controls it, per spec §4.9 step 3. A bit with no remaining pivot is
// uncontrollable and is left exactly as the encoder produced it.
func (st *qartBlockState) steer(flat int, desired bool) {
	pivotIdx := -1
	for i, v := range st.pool {
		if getBit(v, flat) {
			pivotIdx = i
			break
		}
	}
	if pivotIdx == -1 {
		return
	}
	pivot := st.pool[pivotIdx]

	for i, v := range st.pool {
		if i != pivotIdx && getBit(v, flat) {
			xorInto(v, pivot)
		}
	}
	st.pool[pivotIdx] = st.pool[len(st.pool)-1]
	st.pool = st.pool[:len(st.pool)-1]

	if getBit(st.current, flat) != desired {
		xorInto(st.current, pivot)
	}
}

func getBit(buf []byte, i int) bool {
	return buf[i/8]>>uint(7-i%8)&1 == 1
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// solveQart steers every block's data+EC codeword toward img under the
// fixed mask, per spec §4.9. Bit positions are visited in row-major image
// order, routed to their owning block via the bit-info overlay: all DATA
// cells first, then all EC cells in a second row-major pass, so EC cells
// only use basis vectors the data cells left free. Fixed-pattern and
// remainder cells are not RS-bearing and are handled by the caller instead.
func solveQart(layout blockLayout, dataBlocks, eccBlocks [][]byte, overlay [][]BitInfo, img *WeightImage, mask Mask) ([][]byte, [][]byte) {
	gen := gfGeneratorPoly(layout.eccLen)
	states := make([]*qartBlockState, layout.numBlocks)
	for b := range dataBlocks {
		states[b] = newQartBlockState(dataBlocks[b], eccBlocks[b], gen)
	}

	size := img.Size()
	var ecSteps []func()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			info := overlay[y][x]
			if info.Phase != PhaseData && info.Phase != PhaseEC {
				continue
			}
			px := img.At(x, y)
			if px.Weight() == 0 {
				continue
			}
			flat := info.BitIndex
			if info.Phase == PhaseEC {
				flat += len(dataBlocks[info.Block]) * 8
			}
			// Image coordinates are post-mask; XOR the mask's flip back out
			// to get the pre-mask bit the codeword must actually carry.
			desired := px.Desired() != mask.apply(y, x)
			st := states[info.Block]
			if info.Phase == PhaseEC {
				ecSteps = append(ecSteps, func() { st.steer(flat, desired) })
				continue
			}
			st.steer(flat, desired)
		}
	}
	for _, step := range ecSteps {
		step()
	}

	newData := make([][]byte, layout.numBlocks)
	newEcc := make([][]byte, layout.numBlocks)
	for b, st := range states {
		dataLen := len(dataBlocks[b])
		newData[b] = append([]byte(nil), st.current[:dataLen]...)
		newEcc[b] = append([]byte(nil), st.current[dataLen:]...)
	}
	return newData, newEcc
}

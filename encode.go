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

// blockLayout describes how a version/ECL's data codewords split into RS
// blocks: numBlocks total, shortBlockLen data bytes in the first
// numShortBlocks blocks, one more in the rest. Matches spec §4.6 step 4 and
// the teacher's addECCAndInterleave (qrcode.go).
type blockLayout struct {
	numBlocks      int
	eccLen         int
	shortBlockLen  int // data bytes per "group 1" block
	numShortBlocks int
}

func computeBlockLayout(version Version, ecl ECL) blockLayout {
	numBlocks := numErrorCorrectionBlocks[ecl][version]
	eccLen := eccCodeWordsPerBlock[ecl][version]
	rawCodewords := numRawDataModules[version] / 8
	shortBlockLen := rawCodewords/numBlocks - eccLen
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	return blockLayout{
		numBlocks:      numBlocks,
		eccLen:         eccLen,
		shortBlockLen:  shortBlockLen,
		numShortBlocks: numShortBlocks,
	}
}

// terminateAndPad appends the terminator, byte-alignment padding and
// alternating 0xEC/0x11 pad bytes to bits so it reaches exactly
// capacityBytes*8 bits, per spec §4.6 steps 1-3.
func terminateAndPad(bits *BitVec, capacityBytes int) {
	capacityBits := capacityBytes * 8
	if bits.Len() > capacityBits {
		panic("qrcode: segment bits exceed data capacity")
	}

	term := minInt(4, capacityBits-bits.Len())
	bits.PushN(0, term)

	if bits.Len()%8 != 0 {
		bits.PushN(0, 8-bits.Len()%8)
	}

	padByte := uint32(0xEC)
	for bits.Len() < capacityBits {
		bits.PushN(padByte, 8)
		padByte ^= 0xEC ^ 0x11
	}
}

// blockSplit partitions dataCodewords (len == layout's total data bytes)
// into per-block data slices, per spec §4.6 step 4: group-1 blocks carry
// shortBlockLen bytes, group-2 blocks carry one more.
func (l blockLayout) blockSplit(dataCodewords []byte) [][]byte {
	blocks := make([][]byte, l.numBlocks)
	i := 0
	for b := 0; b < l.numBlocks; b++ {
		n := l.shortBlockLen
		if b >= l.numShortBlocks {
			n++
		}
		blocks[b] = dataCodewords[i : i+n]
		i += n
	}
	return blocks
}

// interleave builds the final raw codeword stream: data bytes interleaved
// column-major across blocks (group-2's extra column last), then EC bytes
// interleaved the same way, per spec §4.6 step 6.
func (l blockLayout) interleave(dataBlocks [][]byte, eccBlocks [][]byte) []byte {
	longBlockLen := l.shortBlockLen + 1
	out := make([]byte, 0, l.numBlocks*longBlockLen+l.eccLen*l.numBlocks)

	for col := 0; col < longBlockLen; col++ {
		for row := 0; row < l.numBlocks; row++ {
			if col == l.shortBlockLen && row < l.numShortBlocks {
				continue // group-1 blocks are one byte shorter; skip their missing column
			}
			out = append(out, dataBlocks[row][col])
		}
	}
	for col := 0; col < l.eccLen; col++ {
		for row := 0; row < l.numBlocks; row++ {
			out = append(out, eccBlocks[row][col])
		}
	}
	return out
}

// computeBlocks runs spec §4.6 steps 1-5: pad the segment bits to the
// version/ECL's data capacity, split into blocks, and compute each block's
// RS remainder. Split out from encodeAndInterleave so the qart solver
// (qart.go) can steer the per-block data/EC bytes before they are
// interleaved into the final raw codeword stream.
func computeBlocks(bits *BitVec, version Version, ecl ECL) (blockLayout, [][]byte, [][]byte) {
	layout := computeBlockLayout(version, ecl)
	dataCapacity := numDataCodewords[ecl][version]

	terminateAndPad(bits, dataCapacity)
	dataCodewords := bits.Bytes()
	if len(dataCodewords) != dataCapacity {
		panic("qrcode: padded data length mismatch")
	}

	dataBlocks := layout.blockSplit(dataCodewords)
	gen := gfGeneratorPoly(layout.eccLen)
	eccBlocks := make([][]byte, layout.numBlocks)
	for i, block := range dataBlocks {
		eccBlocks[i] = rsRemainder(block, gen)
	}

	return layout, dataBlocks, eccBlocks
}

// encodeAndInterleave runs spec §4.6 end to end, producing the final raw
// codeword stream consumed by matrix placement.
func encodeAndInterleave(bits *BitVec, version Version, ecl ECL) []byte {
	layout, dataBlocks, eccBlocks := computeBlocks(bits, version, ecl)
	return layout.interleave(dataBlocks, eccBlocks)
}

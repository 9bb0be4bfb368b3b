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

// GF(256) arithmetic for the Reed–Solomon code, realized over the primitive
// polynomial x^8+x^4+x^3+x^2+1 (0x11d), the field QR codes are defined over.
//
// Grounded on the teacher's reedSolomonMultiply/reedSolomonComputeDivisor
// (package.go / qrcode.go in grkuntzmd/qrcodegen), generalized into an
// exp/log table pair so codeword-remainder computation (used both by the
// encoder and, per-block, by the qart solver's basis construction) is O(1)
// multiply instead of the teacher's Russian-peasant loop. The exp/log
// convention (EXP[0]=1, primitive 0x11d) matches the vitrun/qart
// coding.Field reference.

const gfPrimitive = 0x11d

// gfExp[i] = α^i for i in [0, 509); the table is doubled past 255 so that
// gfExp[a+b] for a,b < 255 never needs a modulo.
var gfExp [509]byte

// gfLog[gfExp[i]] = i for i in [0, 255); gfLog[0] is unused (0 has no log).
var gfLog [256]int

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(x)
		gfLog[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPrimitive
		}
	}
	for i := 255; i < len(gfExp); i++ {
		gfExp[i] = gfExp[i-255]
	}
}

// gfMul returns the product of a and b in GF(256).
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[gfLog[a]+gfLog[b]]
}

// gfGeneratorPoly returns the degree-k Reed–Solomon generator polynomial
// g_k(x) = prod_{i=0}^{k-1} (x - α^i), stored as k coefficients **in
// exponent form** (gen[j] = LOG of the field-element coefficient), the
// representation spec §4.1 calls for so rsRemainder can fold a generator
// term in with a single EXP lookup instead of a multiply. Computed once per
// distinct k in [2,30] and cached.
func gfGeneratorPoly(k int) []byte {
	if g, ok := generatorCache[k]; ok {
		return g
	}
	coeffs := make([]byte, k)
	coeffs[k-1] = 1 // start with the monomial 1 (degree 0)
	root := byte(1)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			coeffs[j] = gfMul(coeffs[j], root)
			if j+1 < k {
				coeffs[j] ^= coeffs[j+1]
			}
		}
		root = gfMul(root, 2)
	}
	exp := make([]byte, k)
	for j, c := range coeffs {
		exp[j] = byte(gfLog[c])
	}
	generatorCache[k] = exp
	return exp
}

var generatorCache = make(map[int][]byte, 29)

// rsRemainder computes the Reed–Solomon remainder of data against the
// degree-len(gen) generator polynomial gen, following the long-division
// recurrence from spec §4.6: work in a scratch buffer, and whenever the
// leading scratch byte is non-zero, fold the generator (scaled by that
// byte's discrete log) into the trailing ecLen bytes.
func rsRemainder(data []byte, gen []byte) []byte {
	ecLen := len(gen)
	scratch := make([]byte, len(data)+ecLen)
	copy(scratch, data)
	for i := 0; i < len(data); i++ {
		lead := scratch[i]
		if lead == 0 {
			continue
		}
		a := gfLog[lead]
		for j := 0; j < ecLen; j++ {
			scratch[i+1+j] ^= gfExp[int(gen[j])+a]
		}
	}
	return scratch[len(data):]
}

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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateProducesFullyTaggedDeterministicSymbol(t *testing.T) {
	qr1, err := Generate([]byte("HELLO WORLD"))
	assert.NoError(t, err)
	qr2, err := Generate([]byte("HELLO WORLD"))
	assert.NoError(t, err)
	assert.Equal(t, qr1.Matrix, qr2.Matrix)
	assert.Equal(t, qr1.Mask, qr2.Mask)

	for y := 0; y < qr1.Size(); y++ {
		for x := 0; x < qr1.Size(); x++ {
			assert.True(t, qr1.Matrix[y][x].HasRole(), "cell (%d,%d) untagged", x, y)
		}
	}
}

func TestGenerateGrowsVersionAndRespectsOptions(t *testing.T) {
	qr, err := Generate([]byte("0123456789"), WithMinVersion(10))
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, int(qr.Version), 10)
	assert.Equal(t, Numeric, qr.Mode)
}

func TestGenerateRejectsPayloadExceedingMaxCapacity(t *testing.T) {
	huge := make([]byte, 5000)
	for i := range huge {
		huge[i] = 'A'
	}
	_, err := Generate(huge, WithMode(Alphanumeric))
	assert.ErrorIs(t, err, ErrExceedsMaxCapacity)
}

func TestGenerateChoosesMinimalPenaltyMask(t *testing.T) {
	qr, err := Generate([]byte("MASK SELECTION TEST"))
	assert.NoError(t, err)

	base := buildMatrix(qr.Version)
	seg, err := encodeSegment([]byte("MASK SELECTION TEST"), qr.Mode, qr.Version)
	assert.NoError(t, err)
	codewords := encodeAndInterleave(seg.Bits, qr.Version, qr.ECL)

	best := penaltyScore(qr.Matrix)
	for m := M0; m <= M7; m++ {
		_, mat := chooseMask(base, codewords, qr.ECL, qr.Version, m)
		assert.LessOrEqual(t, best, penaltyScore(mat))
	}
}

func TestGenerateQartValidatesImageSize(t *testing.T) {
	img, err := NewWeightImage(5, make([]WeightPixel, 25))
	assert.NoError(t, err)

	_, err = GenerateQart([]byte("HI"), img, WithMinVersion(1), WithStrictVersion(true))
	assert.ErrorIs(t, err, ErrInvalidPixelWeights)
}

func TestGenerateQartProducesFullyTaggedSymbol(t *testing.T) {
	version := Version(5)
	size := version.Size()
	pixels := make([]WeightPixel, size*size)
	for i := range pixels {
		pixels[i] = NewWeightPixel(80, i%3 == 0)
	}
	img, err := NewWeightImage(size, pixels)
	assert.NoError(t, err)

	qr, err := GenerateQart([]byte("QART"), img, WithMinVersion(version), WithStrictVersion(true))
	assert.NoError(t, err)
	assert.Equal(t, version, qr.Version)

	for y := 0; y < qr.Size(); y++ {
		for x := 0; x < qr.Size(); x++ {
			assert.True(t, qr.Matrix[y][x].HasRole(), "cell (%d,%d) untagged", x, y)
		}
	}
}

func TestGenerateQartSteersEveryDataBitExactlyToTheImage(t *testing.T) {
	// Every DATA-phase cell has its own free basis vector (one per data
	// bit), so steering it is never contended by another cell: the final
	// rendered module must equal the image's desired value exactly.
	version := Version(10)
	size := version.Size()
	overlay := buildBitInfo(version, Medium)

	pixels := make([]WeightPixel, size*size)
	for i := range pixels {
		pixels[i] = NewWeightPixel(90, (i/7)%2 == 0)
	}
	img, err := NewWeightImage(size, pixels)
	assert.NoError(t, err)

	qr, err := GenerateQart([]byte("STEERING TEST PAYLOAD"), img, WithMinVersion(version), WithStrictVersion(true), WithMinECL(Medium), WithStrictECL(true), WithMask(M0))
	assert.NoError(t, err)

	checked := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if overlay[y][x].Phase != PhaseData {
				continue
			}
			assert.Equal(t, img.At(x, y).Desired(), qr.Matrix[y][x].On(), "mismatch at (%d,%d)", x, y)
			checked++
		}
	}
	assert.Greater(t, checked, 0)
}

func TestStringRendersGrid(t *testing.T) {
	qr, err := Generate([]byte("1"))
	assert.NoError(t, err)
	s := qr.String()
	assert.True(t, strings.Contains(s, "Version"))

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	gridLines := lines[len(lines)-qr.Size():]
	for _, line := range gridLines {
		assert.Equal(t, qr.Size(), len([]rune(strings.TrimPrefix(line, "\t\t"))))
	}
}

func TestToSVGStringRejectsNegativeBorder(t *testing.T) {
	qr, err := Generate([]byte("1"))
	assert.NoError(t, err)
	_, err = qr.ToSVGString(-1, false)
	assert.Error(t, err)
}

func TestToSVGStringContainsViewBox(t *testing.T) {
	qr, err := Generate([]byte("1"))
	assert.NoError(t, err)
	svg, err := qr.ToSVGString(2, true)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(svg, fmt.Sprintf("viewBox=\"0 0 %d %d\"", qr.Size()+4, qr.Size()+4)))
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
}
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

// WeightPixel packs one weighted target module into a single byte: the
// top 7 bits carry a weight in [0,127] (0 meaning "don't care"), the low
// bit carries the desired rendered value. Grounded on the vitrun/qart
// Pixel type's packed-uint32 style (coding.go, other_examples), scaled
// down to the one byte spec §4.9/§4.12 calls for.
type WeightPixel uint8

// NewWeightPixel packs a weight/desired-bit pair. weight is clamped into
// [0,127].
func NewWeightPixel(weight int, desired bool) WeightPixel {
	if weight < 0 {
		weight = 0
	}
	if weight > 127 {
		weight = 127
	}
	p := WeightPixel(weight << 1)
	if desired {
		p |= 1
	}
	return p
}

// Weight returns the pixel's steering weight; 0 means the qart solver may
// set this module however is convenient.
func (p WeightPixel) Weight() int {
	return int(p >> 1)
}

// Desired reports the rendered ON/OFF value the image wants at this
// module.
func (p WeightPixel) Desired() bool {
	return p&1 == 1
}

// WeightImage is the caller-supplied size×size target image GenerateQart
// steers the symbol toward, per spec §4.9/§4.12.
type WeightImage struct {
	size   int
	pixels []WeightPixel
}

// NewWeightImage validates that pixels holds exactly size*size entries,
// row-major, and wraps them into a WeightImage. Validating here means
// GenerateQart can assume a well-formed image before the solver runs.
func NewWeightImage(size int, pixels []WeightPixel) (*WeightImage, error) {
	if size <= 0 || len(pixels) != size*size {
		return nil, wrapf(ErrInvalidPixelWeights, "want %d pixels for a %d×%d image, got %d", size*size, size, size, len(pixels))
	}
	return &WeightImage{size: size, pixels: pixels}, nil
}

// Size returns the image's side length.
func (w *WeightImage) Size() int {
	return w.size
}

// At returns the pixel at column x, row y.
func (w *WeightImage) At(x, y int) WeightPixel {
	return w.pixels[y*w.size+x]
}

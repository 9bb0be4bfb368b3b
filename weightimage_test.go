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

func TestNewWeightPixelClampsWeight(t *testing.T) {
	assert.Equal(t, 0, NewWeightPixel(-5, true).Weight())
	assert.Equal(t, 127, NewWeightPixel(500, true).Weight())
	assert.Equal(t, 64, NewWeightPixel(64, false).Weight())
}

func TestNewWeightPixelPacksDesired(t *testing.T) {
	assert.True(t, NewWeightPixel(10, true).Desired())
	assert.False(t, NewWeightPixel(10, false).Desired())
}

func TestNewWeightImageValidatesPixelCount(t *testing.T) {
	_, err := NewWeightImage(3, make([]WeightPixel, 8))
	assert.ErrorIs(t, err, ErrInvalidPixelWeights)

	img, err := NewWeightImage(3, make([]WeightPixel, 9))
	assert.NoError(t, err)
	assert.Equal(t, 3, img.Size())
}

func TestWeightImageAtIsRowMajor(t *testing.T) {
	pixels := make([]WeightPixel, 9)
	pixels[1*3+2] = NewWeightPixel(7, true)
	img, err := NewWeightImage(3, pixels)
	assert.NoError(t, err)
	assert.Equal(t, 7, img.At(2, 1).Weight())
	assert.True(t, img.At(2, 1).Desired())
	assert.Equal(t, 0, img.At(0, 0).Weight())
}
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bitString renders a BitVec's first n bits as a "0101..." string, for
// comparing against the spec's bitstream-prefix seed scenarios.
func bitString(b *BitVec, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if b.Get(i) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Numeric, classify([]byte("0123456789")))
	assert.Equal(t, Alphanumeric, classify([]byte("ABC1::4")))
	assert.Equal(t, Byte, classify([]byte("hello")))
	assert.Equal(t, Numeric, classify([]byte("")))
}

func TestEncodeSegmentNumeric(t *testing.T) {
	cases := []struct {
		payload string
		prefix  string
	}{
		{"1", "0001" + "0000000001" + "0001"},
		{"99", "0001" + "0000000010" + "1100011"},
		{"123456", "0001" + "0000000110" + "0001111011" + "0111001000"},
	}

	for _, tc := range cases {
		t.Run(tc.payload, func(t *testing.T) {
			seg, err := encodeSegment([]byte(tc.payload), Numeric, 1)
			assert.NoError(t, err)
			want := strings.ReplaceAll(tc.prefix, " ", "")
			assert.Equal(t, want, bitString(seg.Bits, len(want)))
		})
	}
}

func TestEncodeSegmentAlphanumeric(t *testing.T) {
	want := "0010" + "000000111" + "00111001101" + "01000011101" + "11111101000" + "000100"
	seg, err := encodeSegment([]byte("ABC1::4"), Alphanumeric, 1)
	assert.NoError(t, err)
	assert.Equal(t, want, bitString(seg.Bits, len(want)))
}

func TestEncodeSegmentByte(t *testing.T) {
	want := "0100" + "00000001" + "00110000"
	seg, err := encodeSegment([]byte("0"), Byte, 1)
	assert.NoError(t, err)
	assert.Equal(t, want, bitString(seg.Bits, len(want)))
}

func TestEncodeSegmentRejectsWrongMode(t *testing.T) {
	_, err := encodeSegment([]byte("abc"), Numeric, 1)
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = encodeSegment([]byte("abc"), Alphanumeric, 1)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestEncodeSegmentRejectsOversizedCharCount(t *testing.T) {
	payload := make([]byte, 1<<10)
	for i := range payload {
		payload[i] = '0'
	}
	_, err := encodeSegment(payload, Numeric, 1)
	assert.ErrorIs(t, err, ErrExceedsMaxCapacity)
}
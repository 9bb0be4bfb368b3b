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
	"strconv"
	"strings"
)

// Segment is one mode-tagged run of payload bits, produced by the classifier
// in this file and consumed by resolve.go/encode.go. Unlike the teacher's
// QRSegment list (qrsegment.go), which models ISO's multi-segment
// concatenation across modes, spec §4.4 classifies the *whole* payload into
// a single mode, so this rendition keeps one Segment per Generate call
// rather than a []*QRSegment — the per-mode encode routines below
// (encodeNumeric/encodeAlphanumeric/encodeByte) are otherwise a direct port
// of MakeNumeric/MakeAlphanumeric/MakeBytes.
type Segment struct {
	Mode     Mode
	NumChars int
	Bits     *BitVec
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func isNumericByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlphanumericByte(b byte) bool {
	return strings.IndexByte(alphanumericCharset, b) >= 0
}

// classify implements spec §4.4's mode classifier: Numeric if every byte is
// an ASCII digit, Alphanumeric if every byte is in the 45-symbol alphabet,
// otherwise Byte.
func classify(payload []byte) Mode {
	allNumeric := true
	allAlnum := true
	for _, b := range payload {
		if !isNumericByte(b) {
			allNumeric = false
		}
		if !isAlphanumericByte(b) {
			allAlnum = false
		}
		if !allNumeric && !allAlnum {
			break
		}
	}
	switch {
	case allNumeric:
		return Numeric
	case allAlnum:
		return Alphanumeric
	default:
		return Byte
	}
}

// encodeSegment builds the Segment for payload under the given mode,
// writing the mode indicator, char-count indicator and payload bits per
// spec §4.4. Returns ErrInvalidEncoding if a caller-forced mode cannot
// represent payload, and ErrExceedsMaxCapacity if the char-count indicator
// for the chosen version cannot hold len(payload).
func encodeSegment(payload []byte, mode Mode, version Version) (*Segment, error) {
	switch mode {
	case Numeric:
		for _, b := range payload {
			if !isNumericByte(b) {
				return nil, wrapf(ErrInvalidEncoding, "byte %q is not numeric", b)
			}
		}
	case Alphanumeric:
		for _, b := range payload {
			if !isAlphanumericByte(b) {
				return nil, wrapf(ErrInvalidEncoding, "byte %q is not in the alphanumeric charset", b)
			}
		}
	case Byte:
		// every byte is valid
	default:
		panic("qrcode: encodeSegment of unknown mode")
	}

	cciBits := mode.numCharCountBits(version)
	if len(payload) >= 1<<uint(cciBits) {
		return nil, wrapf(ErrExceedsMaxCapacity, "%d characters exceeds the %d-bit char-count field", len(payload), cciBits)
	}

	bits := NewBitVec()
	bits.PushN(uint32(mode.modeBits), 4)
	bits.PushN(uint32(len(payload)), int(cciBits))

	switch mode {
	case Numeric:
		writeNumeric(bits, payload)
	case Alphanumeric:
		writeAlphanumeric(bits, payload)
	case Byte:
		bits.Append(payload)
	}

	return &Segment{Mode: mode, NumChars: len(payload), Bits: bits}, nil
}

// writeNumeric groups digits by three into 10-bit values, per spec §4.4;
// a trailing group of 1 or 2 digits uses 4 or 7 bits. Ported from the
// teacher's MakeNumeric.
func writeNumeric(bits *BitVec, digits []byte) {
	for i := 0; i < len(digits); {
		n := minInt(len(digits)-i, 3)
		d, _ := strconv.Atoi(string(digits[i : i+n]))
		bits.PushN(uint32(d), n*3+1)
		i += n
	}
}

// writeAlphanumeric groups symbols by two into 11-bit values (45*a+b); a
// trailing single symbol uses 6 bits. Ported from the teacher's
// MakeAlphanumeric.
func writeAlphanumeric(bits *BitVec, text []byte) {
	i := 0
	for ; i+1 < len(text); i += 2 {
		a := strings.IndexByte(alphanumericCharset, text[i])
		b := strings.IndexByte(alphanumericCharset, text[i+1])
		bits.PushN(uint32(a*45+b), 11)
	}
	if i < len(text) {
		a := strings.IndexByte(alphanumericCharset, text[i])
		bits.PushN(uint32(a), 6)
	}
}

// bitCostFor returns the header+payload bit cost of encoding payload as mode
// at version, or -1 if the char-count field cannot hold len(payload).
func bitCostFor(payload []byte, mode Mode, version Version) int {
	cciBits := int(mode.numCharCountBits(version))
	if len(payload) >= 1<<uint(cciBits) {
		return -1
	}
	return 4 + cciBits + mode.bitCost(len(payload))
}

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

// resolve implements spec §4.5: pick the segment mode, the smallest version
// that fits (growing from opts.minVersion unless strictVersion is set), and
// then the strongest ECL that still fits (unless strictECL is set).
//
// Grounded in the teacher's version-search loop in EncodeSegments
// (qrcode.go): "while capacity < required, version++; then boost ECL while
// it still fits." This rendition separates mode resolution (forced vs
// auto-classified) and reports the two distinct failure modes spec §7
// requires (ErrInvalidEncoding vs ErrExceedsMaxCapacity) instead of the
// teacher's single generic fmt.Errorf.
func resolve(payload []byte, opts Options) (mode Mode, version Version, ecl ECL, err error) {
	mode = opts.mode
	if mode == autoMode {
		mode = classify(payload)
	} else if !modeFits(payload, mode) {
		return Mode{}, 0, 0, wrapf(ErrInvalidEncoding, "payload is not valid %s data", mode)
	}

	version = opts.minVersion
	for {
		cost := bitCostFor(payload, mode, version)
		if cost >= 0 {
			requiredBytes := (cost + 7) / 8
			if requiredBytes <= numDataCodewords[opts.minECL][version] {
				break
			}
		}
		if opts.strictVersion {
			return Mode{}, 0, 0, wrapf(ErrExceedsMaxCapacity, "payload does not fit strict version %d", opts.minVersion)
		}
		version++
		if version > MaxVersion {
			return Mode{}, 0, 0, wrapf(ErrExceedsMaxCapacity, "no version up to %d fits %d-byte payload", MaxVersion, len(payload))
		}
	}

	ecl = opts.minECL
	if !opts.strictECL {
		cost := bitCostFor(payload, mode, version)
		requiredBytes := (cost + 7) / 8
		for e := opts.minECL + 1; e <= High; e++ {
			if requiredBytes <= numDataCodewords[e][version] {
				ecl = e
			}
		}
	}

	logger.Debug().
		Str("mode", mode.String()).
		Int8("version", int8(version)).
		Str("ecl", ecl.String()).
		Msg("resolved version/ecl")

	return mode, version, ecl, nil
}

// modeFits reports whether payload can be represented in the given forced
// mode without reclassification.
func modeFits(payload []byte, mode Mode) bool {
	switch mode {
	case Numeric:
		for _, b := range payload {
			if !isNumericByte(b) {
				return false
			}
		}
		return true
	case Alphanumeric:
		for _, b := range payload {
			if !isAlphanumericByte(b) {
				return false
			}
		}
		return true
	case Byte:
		return true
	default:
		return false
	}
}

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
)

// QrCode is the final immutable product of Generate/GenerateQart: a
// placed, masked symbol plus the choices the resolver made to produce it,
// per spec §3.
type QrCode struct {
	Matrix  [][]Module
	Mode    Mode
	Version Version
	ECL     ECL
	Mask    Mask
}

// Size returns the module width/height of the symbol.
func (q *QrCode) Size() int {
	return len(q.Matrix)
}

// Generate encodes payload into a QR symbol per spec §1/§4.4-§4.7: resolve
// mode/version/ECL, encode the segment, compute EC and interleave, place
// the matrix and pick (or apply) a mask. Grounded on the teacher's
// EncodeSegments pipeline (qrcode.go), split into the named pipeline
// stages spec §4 describes instead of one monolithic function.
func Generate(payload []byte, opts ...Option) (*QrCode, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mode, version, ecl, err := resolve(payload, o)
	if err != nil {
		return nil, err
	}

	seg, err := encodeSegment(payload, mode, version)
	if err != nil {
		return nil, err
	}

	codewords := encodeAndInterleave(seg.Bits, version, ecl)
	base := buildMatrix(version)
	mask, mat := chooseMask(base, codewords, ecl, version, o.mask)

	return &QrCode{Matrix: mat, Mode: mode, Version: version, ECL: ecl, Mask: mask}, nil
}

// GenerateQart encodes payload exactly as Generate does, then steers the
// chosen symbol's codewords toward img under a fixed mask, per spec §4.9.
// img's side length must equal the resolved version's symbol size — since
// the resolver is free to grow the version to fit payload, callers
// targeting a specific symbol size should pin it with WithMinVersion and
// WithStrictVersion.
func GenerateQart(payload []byte, img *WeightImage, opts ...Option) (*QrCode, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mode, version, ecl, err := resolve(payload, o)
	if err != nil {
		return nil, err
	}
	if img.Size() != version.Size() {
		return nil, wrapf(ErrInvalidPixelWeights, "image is %d×%d but version %d symbols are %d×%d", img.Size(), img.Size(), version, version.Size(), version.Size())
	}

	seg, err := encodeSegment(payload, mode, version)
	if err != nil {
		return nil, err
	}

	layout, dataBlocks, eccBlocks := computeBlocks(seg.Bits, version, ecl)

	mask := o.mask
	if mask == MaskAuto {
		base := buildMatrix(version)
		codewords := layout.interleave(dataBlocks, eccBlocks)
		mask, _ = chooseMask(base, codewords, ecl, version, MaskAuto)
	}

	overlay := buildBitInfo(version, ecl)
	steeredData, steeredEcc := solveQart(layout, dataBlocks, eccBlocks, overlay, img, mask)

	logger.Debug().
		Int8("version", int8(version)).
		Int8("mask", int8(mask)).
		Msg("qart solve complete")

	codewords := layout.interleave(steeredData, steeredEcc)
	mat := buildMatrix(version)
	placeData(mat, codewords)
	applyMask(mat, mask)
	writeFormatInfo(mat, ecl, mask)
	writeVersionInfo(mat, version)

	size := len(mat)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if overlay[y][x].Phase != PhaseRemainder {
				continue
			}
			if px := img.At(x, y); px.Weight() > 0 {
				mat[y][x] = mat[y][x].SetOn(px.Desired())
			}
		}
	}

	return &QrCode{Matrix: mat, Mode: mode, Version: version, ECL: ecl, Mask: mask}, nil
}

// String renders the symbol as a block-character grid, in the teacher's
// own QRCode.String() style (qrcode.go).
func (q *QrCode) String() string {
	var sb strings.Builder
	sb.WriteString("QrCode\n")
	fmt.Fprintf(&sb, "\tVersion: %d\n", q.Version)
	fmt.Fprintf(&sb, "\tSize: %d\n", q.Size())
	fmt.Fprintf(&sb, "\tErrorCorrectionLevel: %s\n", q.ECL)
	fmt.Fprintf(&sb, "\tMask: %d\n", q.Mask)
	sb.WriteString("\tModules\n")
	for y := 0; y < q.Size(); y++ {
		sb.WriteString("\t\t")
		for x := 0; x < q.Size(); x++ {
			if q.Matrix[y][x].On() {
				sb.WriteString("░")
			} else {
				sb.WriteString("▓")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToSVGString returns a scalable vector graphics (SVG) representation of
// the symbol with a border of border modules on each side, ported from
// the teacher's QRCode.ToSVGString (qrcode.go).
func (q *QrCode) ToSVGString(border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("qrcode: border must be non-negative")
	}

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", q.Size()+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	for y := 0; y < q.Size(); y++ {
		for x := 0; x < q.Size(); x++ {
			if q.Matrix[y][x].On() {
				if x != 0 && y != 0 {
					sb.WriteString(" ")
				}
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}

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

// Module is the packed 8-bit tag for a single QR symbol cell, per spec §3:
//
//	bit 0      ON/OFF (the rendered colour)
//	bits 1-6   role flag, one-hot: Finder/Alignment/Timing/Format/Version/Data
//	bit 7      modifier (finder/alignment center, or format/version copy)
//
// The teacher (qrcode.go in grkuntzmd/qrcodegen) tracks colour in a
// [][]module bool-like grid and role in a parallel [][]bool IsFunction
// grid; this generalizes both into one tag per spec's explicit external
// contract (renderers depend on the bit layout), with a wrapper type and
// named bit-or/bit-and operations rather than raw int arithmetic, per the
// design note in spec §9.
type Module uint8

const (
	moduleOn       Module = 1 << 0
	roleFinder     Module = 1 << 1
	roleAlignment  Module = 1 << 2
	roleTiming     Module = 1 << 3
	roleFormat     Module = 1 << 4
	roleVersion    Module = 1 << 5
	roleData       Module = 1 << 6
	moduleModifier Module = 1 << 7

	roleMask = roleFinder | roleAlignment | roleTiming | roleFormat | roleVersion | roleData
)

// On reports whether the module is rendered as the "dark" colour.
func (m Module) On() bool {
	return m&moduleOn != 0
}

// SetOn returns a copy of m with the ON bit set to on, leaving role/modifier
// bits untouched.
func (m Module) SetOn(on bool) Module {
	if on {
		return m | moduleOn
	}
	return m &^ moduleOn
}

// XorOn returns a copy of m with the ON bit flipped if flip is true; used by
// the mask XOR pass (spec §4.7) which must never touch role bits.
func (m Module) XorOn(flip bool) Module {
	if flip {
		return m ^ moduleOn
	}
	return m
}

// HasRole reports whether m already carries a primary role flag.
func (m Module) HasRole() bool {
	return m&roleMask != 0
}

// WithRole returns m with role OR-ed in. Panics if m already carries a
// different role, guarding the invariant that exactly one role flag is set
// per non-blank cell (spec §3); re-asserting the same role is allowed, so a
// pass may tag a cell it has already tagged. Passes whose patterns overlap
// with different roles (timing over finder or alignment) skip cells that
// already carry a role instead of calling WithRole on them.
func (m Module) WithRole(role Module) Module {
	existing := m & roleMask
	if existing != 0 && existing != role {
		panic("qrcode: module role conflict")
	}
	return m | role
}

// WithModifier returns m with the modifier bit set (finder/alignment center,
// or format/version copy).
func (m Module) WithModifier() Module {
	return m | moduleModifier
}

// IsModifier reports whether the modifier bit is set.
func (m Module) IsModifier() bool {
	return m&moduleModifier != 0
}

// IsData reports whether m's role is Data (the only role the zig-zag walk
// and the qart solver ever rewrite the ON bit of after initial placement).
func (m Module) IsData() bool {
	return m&roleMask == roleData
}

func (m Module) role() Module { return m & roleMask }

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

// Options controls Generate/GenerateQart, per spec §6. The zero value plus
// the Option funcs below is the same functional-options idiom the teacher
// uses for segmentEncoder (segmentencoder.go: WithAutoMask/WithBoostECL/
// WithMaxVersion/WithMinVersion) — generalized here to cover the full
// option surface spec.md's Options object names (min/strict version,
// min/strict ECL, forced mode, forced mask).
type Options struct {
	minVersion    Version
	strictVersion bool
	minECL        ECL
	strictECL     bool
	mode          Mode
	mask          Mask
}

// Option mutates an in-progress Options value.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		minVersion: MinVersion,
		minECL:     Low,
		mode:       autoMode,
		mask:       MaskAuto,
	}
}

// WithMinVersion sets the smallest version the resolver may choose.
func WithMinVersion(v Version) Option {
	return func(o *Options) { o.minVersion = v }
}

// WithStrictVersion refuses to upsize past minVersion; Generate fails
// ErrExceedsMaxCapacity instead.
func WithStrictVersion(strict bool) Option {
	return func(o *Options) { o.strictVersion = strict }
}

// WithMinECL sets the weakest error-correction level the resolver may
// choose.
func WithMinECL(e ECL) Option {
	return func(o *Options) { o.minECL = e }
}

// WithStrictECL refuses to opportunistically upgrade past minECL.
func WithStrictECL(strict bool) Option {
	return func(o *Options) { o.strictECL = strict }
}

// WithMode forces segment encoding to the given mode instead of the
// automatic classifier in segment.go; Generate fails ErrInvalidEncoding if
// the payload does not fit it.
func WithMode(m Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithMask fixes the data mask instead of automatic penalty-based
// selection.
func WithMask(m Mask) Option {
	return func(o *Options) { o.mask = m }
}

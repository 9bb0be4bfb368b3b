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
	"errors"
	"fmt"
)

// Sentinel errors per spec §7. Programmer errors (bad table index, a
// placement pass that leaves a cell untagged) are not part of this
// taxonomy — they panic, matching the teacher's own
// panic("incorrect data size calculation") style throughout qrcode.go.
var (
	ErrInvalidEncoding     = errors.New("qrcode: invalid encoding")
	ErrExceedsMaxCapacity  = errors.New("qrcode: exceeds max capacity")
	ErrInvalidPixelWeights = errors.New("qrcode: invalid pixel weights")
)

// wrapf attaches context to a sentinel error while keeping it matchable by
// errors.Is.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}

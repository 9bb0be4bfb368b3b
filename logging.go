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
	"io"

	"github.com/rs/zerolog"
)

// logger is the package-level diagnostic logger described in SPEC_FULL.md
// §4.11. It is silent by default (io.Discard) so the core stays pure from
// the caller's perspective; SetLogger lets a host application opt into
// tracing resolver/placement/qart decisions, the way the corpus's zerolog
// callers configure a package-level logger once at startup.
var logger = zerolog.New(io.Discard)

// SetLogger installs l as the package-level diagnostic logger. It never
// affects Generate/GenerateQart's output bytes.
func SetLogger(l zerolog.Logger) {
	logger = l
}

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

// Command demo renders a symbol for the given payload to a temporary SVG
// file and opens it in the system browser, for eyeballing a change during
// development rather than reading raw matrix dumps.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/browser"

	"github.com/grkuntzmd/qartcode"
)

func main() {
	border := flag.Int("border", 4, "quiet-zone border, in modules")
	flag.Parse()

	payload := "HELLO, WORLD!"
	if flag.NArg() > 0 {
		payload = flag.Arg(0)
	}

	qr, err := qrcode.Generate([]byte(payload))
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}

	svg, err := qr.ToSVGString(*border, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}

	f, err := os.CreateTemp("", "qartcode-*.svg")
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
	defer f.Close()

	if _, err := f.WriteString(svg); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}

	if err := browser.OpenFile(f.Name()); err != nil {
		fmt.Fprintln(os.Stderr, "demo: opening browser:", err)
		os.Exit(1)
	}
}

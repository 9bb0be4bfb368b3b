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

func TestResolveAutoModeAndGrowth(t *testing.T) {
	mode, version, ecl, err := resolve([]byte("12345"), defaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, Numeric, mode)
	assert.Equal(t, Version(1), version)
	// 31 bits (4 bytes) fit V1 even at High, so the non-strict default
	// boosts the ECL all the way up.
	assert.Equal(t, High, ecl)

	// A payload that does not fit version 1 at all must grow the version.
	big := make([]byte, 200)
	for i := range big {
		big[i] = '0'
	}
	_, version, _, err = resolve(big, defaultOptions())
	assert.NoError(t, err)
	assert.Greater(t, int(version), 1)
}

func TestResolveForcedModeRejectsIncompatiblePayload(t *testing.T) {
	o := defaultOptions()
	o.mode = Numeric
	_, _, _, err := resolve([]byte("abc"), o)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestResolveStrictVersionFailsInsteadOfGrowing(t *testing.T) {
	o := defaultOptions()
	o.strictVersion = true
	big := make([]byte, 200)
	for i := range big {
		big[i] = '0'
	}
	_, _, _, err := resolve(big, o)
	assert.ErrorIs(t, err, ErrExceedsMaxCapacity)
}

func TestResolveBoostsECLWhenStrictECLIsFalse(t *testing.T) {
	// A single digit at V1 fits comfortably within High ECL's capacity too,
	// so the opportunistic boost should pick the strongest level.
	_, _, ecl, err := resolve([]byte("1"), defaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, High, ecl)
}

func TestResolveStrictECLKeepsMinECL(t *testing.T) {
	o := defaultOptions()
	o.minECL = Medium
	o.strictECL = true
	_, _, ecl, err := resolve([]byte("1"), o)
	assert.NoError(t, err)
	assert.Equal(t, Medium, ecl)
}
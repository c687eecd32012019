// Copyright 2024 The CCSDS-LDPC Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ldpc

import (
	"errors"
	"fmt"
)

// ErrCorruptConstants is returned by Code.LoadGeneratorConstants when an
// externally supplied constant table fails its shape checks. The tables
// compiled into this package are always well-formed, so this is only
// reachable through that external-loading path.
var ErrCorruptConstants = errors.New("ldpc: corrupt constant table")

// validateLen panics if got != want. Every InitXxx entry point calls this
// before touching its output buffer: a wrong-length buffer is a programming
// error on the caller's part, not a recoverable runtime condition, so this
// aborts loudly instead of returning an error (spec.md §7).
func validateLen(what string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("ldpc: %s has length %d, want %d", what, got, want))
	}
}

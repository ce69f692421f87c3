// SPDX-License-Identifier: MIT
//go:build vectordebug

package vector

import "fmt"

// debugChecks enables contract assertions (build with -tags vectordebug).
const debugChecks = true

// assertf panics with a "vector: " prefixed message when cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("vector: " + fmt.Sprintf(format, args...))
	}
}

// SPDX-License-Identifier: MIT
//go:build !vectordebug

package vector

// debugChecks gates contract assertions; callers write
// `if debugChecks { assertf(...) }` so release builds drop the check entirely.
const debugChecks = false

func assertf(bool, string, ...any) {}

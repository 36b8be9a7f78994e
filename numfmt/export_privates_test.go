// SPDX-License-Identifier: MIT

package numfmt

// Test bridge: exposes private constants to numfmt_test without widening the API.

// PanicPrecisionNegative_TestOnly is the panic message for precision < 0.
const PanicPrecisionNegative_TestOnly = panicPrecisionNegative

// FloatIntDigits_TestOnly forwards to floatIntDigits.
var FloatIntDigits_TestOnly = floatIntDigits

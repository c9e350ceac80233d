// SPDX-License-Identifier: MIT

package linsys

// PanicEpsilonInvalid_TestOnly exports the panic message to avoid magic strings in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

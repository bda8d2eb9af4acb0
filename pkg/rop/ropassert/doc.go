// Package ropassert contains testify-based assertions for rop values.
//
// Each helper checks the variant first and fails the test with a message that
// names the expected and the actual variant. The payload accessors (IsOkAnd,
// IsErrorAnd, IsLeftAnd, IsRightAnd) then return a ValueAssert for further
// checks:
//
//	ropassert.Result(t, r).IsOkAnd().IsEqualTo(42)
//	ropassert.IsEitherErrorAnd(ropassert.Result(t, widened)).IsRightAnd().IsEqualTo("bad")
//
// Failures go through require, so with a *testing.T the test stops at the
// first mismatch.
package ropassert

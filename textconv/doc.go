// Package textconv renders integers and addresses as ASCII text without
// allocating.
//
// Every converter writes into a caller-supplied buffer, right to left, and
// returns the subslice holding the text. The last byte of the buffer always
// receives a NUL terminator, so the text is also usable as a C string.
//
// Buffers are expected to be fixed-size arrays on the caller's stack:
//
//	var buf [textconv.Int32Size]byte
//	text := textconv.FormatInt32(buf[:], -42) // "-42"
//
// Sizes cover the worst case for each value type:
//
//	Converter       Buffer            Worst case
//	──────────────────────────────────────────────────────────────
//	FormatInt32     Int32Size   (12)  -2147483648 + NUL
//	FormatInt64     Int64Size   (21)  -9223372036854775808 + NUL
//	FormatUint64    Uint64Size  (21)  18446744073709551615 + NUL
//	FormatPointer   PointerSize       0x + 2 digits per byte + NUL
//
// A buffer that is too small never overflows: the converter keeps the
// least significant digits that fit and drops the rest (sign and "0x"
// prefix included). Output is degraded but always in bounds.
//
// The functions take no locks, hold no state, and call nothing outside this
// package, which makes them usable from contexts where the rest of the
// program may be in an inconsistent state.
package textconv

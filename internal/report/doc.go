// Package report renders computation results as canonical JSON.
//
// Canonical output follows RFC 8785 closely enough for byte-for-byte golden
// comparison:
//   - object keys sorted by UTF-16 code units
//   - no HTML escaping, only quote, backslash and control characters escaped
//   - strings NFC normalized
//   - numbers in ECMAScript shortest form (what encoding/json emits)
//   - NaN, ±Inf and null rejected
package report

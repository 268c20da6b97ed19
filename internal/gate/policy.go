package gate

import "strings"

// nonASCIILead is the first byte of the two-byte UTF-8 sequences that
// path quoting produces for non-ASCII file names in the Latin block
const nonASCIILead = 0xC3

// Disallowed reports whether a changed path violates the naming policy.
// The check is raw byte containment, not decoding: any occurrence of the
// lead byte flags the path, even inside an unrelated byte run. That
// keeps the exact matching behavior of the quoting convention the check
// is tied to, including its known edge cases.
func Disallowed(path string) bool {
	return strings.IndexByte(path, nonASCIILead) >= 0
}

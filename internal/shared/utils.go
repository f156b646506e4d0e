// Package shared provides small helpers used by both binaries.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used for secrets such as access tokens read from a terminal.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

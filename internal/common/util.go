package common

// WipeByteArray overwrites all bytes in the given slice with zeros.
// This is useful for removing sensitive data such as passwords from
// memory after use.
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

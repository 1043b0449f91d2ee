// Package common holds small helpers shared across client packages.
package common

// WipeByteArray overwrites b with zeros. Used to remove passwords from
// memory once they are no longer needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

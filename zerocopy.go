package thriftwire

import "unsafe"

// unsafeString aliases b as a string without copying. The bytes must
// not be mutated for the lifetime of the string; detached reader
// slices and freshly allocated stream payloads both satisfy that.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// unsafeBytes aliases s as a byte slice without copying. The result
// must never be written to; chain segments are append-only so splicing
// a string this way is sound.
func unsafeBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

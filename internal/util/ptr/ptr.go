// Package ptr provides helpers for optional string fields in deployment
// properties, where a nil pointer means the key was not supplied.
package ptr

// String returns a pointer to the given string value.
func String(s string) *string { return &s }

// Deref returns the value p points to, or "" when p is nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

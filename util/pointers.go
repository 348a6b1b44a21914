package util

// ToPtr returns a pointer pointing to a.
// The returned pointer is never nil.
func ToPtr[T any](a T) *T {
	return &a
}

// ValOr returns the value p points to or def if p is nil.
func ValOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

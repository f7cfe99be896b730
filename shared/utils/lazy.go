package utils

// LazyStr defers building a string until a formatter asks for it,
// so disabled log levels cost nothing.
type LazyStr struct {
	fn func() string
}

func NewLazyStr(fn func() string) LazyStr {
	return LazyStr{
		fn: fn,
	}
}

func (s LazyStr) String() string {
	return s.fn()
}

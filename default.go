package diacritics

import "sync/atomic"

type lazyMapper struct {
	factory func() *Mapper
	value   atomic.Pointer[Mapper]
}

func (l *lazyMapper) get() *Mapper {
	if m := l.value.Load(); m != nil {
		return m
	}
	m := l.factory()
	if m == nil {
		m = New()
	}
	if l.value.CompareAndSwap(nil, m) {
		return m
	}
	return l.value.Load()
}

var current atomic.Pointer[lazyMapper]

func init() {
	SetDefaultFactory(newDefaultMapper)
}

// Current returns the process-wide default Mapper, creating it with the installed
// factory on first use.
//
// Concurrent first calls may run the factory more than once, but only one result is
// published and returned to every caller. Factories must therefore be free of side effects.
func Current() *Mapper {
	return current.Load().get()
}

// SetDefaultFactory installs factory for the next first access of Current.
// Mappers already returned by Current are not affected. A nil factory restores
// the default, which creates a Mapper without any providers.
func SetDefaultFactory(factory func() *Mapper) {
	if factory == nil {
		factory = newDefaultMapper
	}
	current.Store(&lazyMapper{
		factory: factory,
	})
}

func newDefaultMapper() *Mapper {
	return New()
}

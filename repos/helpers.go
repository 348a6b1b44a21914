package repos

type Optional[T any] struct {
	value    T
	hasValue bool
}

func NewOptional[T any](value T, hasValue bool) Optional[T] {
	return Optional[T]{
		value:    value,
		hasValue: hasValue,
	}
}

func NewOptionalFull[T any](value T) Optional[T] {
	return Optional[T]{
		value:    value,
		hasValue: true,
	}
}

func NewOptionalEmpty[T any]() Optional[T] {
	return Optional[T]{
		hasValue: false,
	}
}

func (o Optional[T]) HasValue() bool {
	return o.hasValue
}

func (o Optional[T]) Get() any {
	if !o.HasValue() {
		return nil
	}
	return o.value
}

type OptionalGetter interface {
	HasValue() bool
	Get() any
}

package subscribers

import (
	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Subscriber[any](&FuncSubscriber[any]{})

// FuncSubscriber adapts plain callbacks to the Subscriber interface. Nil
// callbacks are simply skipped, so partial subscribers are fine: a nil value
// callback accepts and discards every value.
type FuncSubscriber[T any] struct {
	value    func(T) error
	err      func(error)
	complete func()
}

// Func creates a FuncSubscriber from the given callbacks, any of which may be
// nil.
func Func[T any](
	value func(T) error,
	err func(error),
	complete func(),
) *FuncSubscriber[T] {
	return &FuncSubscriber[T]{
		value:    value,
		err:      err,
		complete: complete,
	}
}

// OnValue invokes the value callback.
func (f *FuncSubscriber[T]) OnValue(v T) error {
	if f.value == nil {
		return nil
	}
	return f.value(v)
}

// OnError invokes the error callback.
func (f *FuncSubscriber[T]) OnError(err error) {
	if f.err != nil {
		f.err(err)
	}
}

// OnComplete invokes the completion callback.
func (f *FuncSubscriber[T]) OnComplete() {
	if f.complete != nil {
		f.complete()
	}
}

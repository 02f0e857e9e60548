package domain

// Subscriber receives the outcome of a single fetch: either one value or one error.
type Subscriber[T any] interface {
	OnNext(value T)
	OnError(err error)
}

// SubscriberFuncs adapts a pair of functions to Subscriber. Nil functions are skipped.
type SubscriberFuncs[T any] struct {
	Next  func(T)
	Error func(error)
}

func (s SubscriberFuncs[T]) OnNext(value T) {
	if s.Next != nil {
		s.Next(value)
	}
}

func (s SubscriberFuncs[T]) OnError(err error) {
	if s.Error != nil {
		s.Error(err)
	}
}

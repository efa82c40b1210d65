package socialhub

import "fmt"

// Result is the envelope every Publisher returns.
type Result[T any] struct {
	success bool
	message string
	payload T
	present bool
}

// Success builds a successful Result carrying payload.
func Success[T any](payload T, message string) Result[T] {
	return Result[T]{success: true, message: message, payload: payload, present: true}
}

// Failure builds a failed Result. Failures never carry a payload.
func Failure[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool { return r.success }

// Message describes the outcome or the error.
func (r Result[T]) Message() string { return r.message }

// Payload returns the payload and whether one is present.
func (r Result[T]) Payload() (T, bool) { return r.payload, r.present }

func (r Result[T]) String() string {
	var payload any = "<nil>"
	if r.present {
		payload = r.payload
	}
	return fmt.Sprintf("Result{success=%t, message='%s', payload=%v}", r.success, r.message, payload)
}

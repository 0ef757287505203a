package union

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var (
	// ErrUnwrap is returned by ExpectSuccess and ExpectError when the outcome is the other one.
	ErrUnwrap = errors.New("unexpected result")
	// ErrPanic marks errors recovered from a panic.
	ErrPanic = errors.New("recovered panic")
)

// Try is the captured outcome of a call: a value or the error it failed with.
type Try[T any] struct {
	res Result[T, error]
}

// Do runs fn and captures its error or panic.
func Do(fn func() error) Try[struct{}] {
	return Get(func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// Get runs fn and captures its value, its error or its panic.
func Get[T any](fn func() (T, error)) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Try[T]{res: Err[T](PanicError(r))}
		}
	}()
	v, err := fn()
	if err != nil {
		return Try[T]{res: Err[T](err)}
	}
	return Try[T]{res: Ok[T, error](v)}
}

// PanicError turns a recovered panic value into an error matching ErrPanic.
// A panic with an error value also matches that error.
func PanicError(r any) error {
	if err, ok := r.(error); ok {
		return &markedError{mark: ErrPanic, msg: "panic", cause: err}
	}
	return errors.Wrapf(ErrPanic, "%v", r)
}

// markedError matches mark with errors.Is and unwraps to cause, so both are visible.
type markedError struct {
	mark  error
	msg   string
	cause error
}

func (e *markedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *markedError) Unwrap() error { return e.cause }

func (e *markedError) Is(target error) bool { return target == e.mark }

func (t Try[T]) Result() Result[T, error] { return t.res }

func (t Try[T]) Failed() bool { return !t.res.IsOk() }

// Err returns the captured error, nil on success.
func (t Try[T]) Err() error {
	err, _ := t.res.Error()
	return err
}

// ExpectSuccess returns the value, or an error matching both ErrUnwrap and the captured error.
func (t Try[T]) ExpectSuccess(msg string) (T, error) {
	v, ok := t.res.Value()
	if !ok {
		return v, &markedError{mark: ErrUnwrap, msg: msg, cause: t.Err()}
	}
	return v, nil
}

// ExpectError returns the captured error, or ErrUnwrap if the call succeeded.
func (t Try[T]) ExpectError(msg string) (captured error, err error) {
	if err := t.Err(); err != nil {
		return err, nil
	}
	return nil, errors.Wrap(ErrUnwrap, msg)
}

// Log writes the outcome to logger: failures at error level, successes at debug.
func (t Try[T]) Log(logger *zap.Logger, msg string) Try[T] {
	if logger == nil {
		return t
	}
	if err := t.Err(); err != nil {
		logger.Error(msg, zap.Error(err), zap.Bool("panic", errors.Is(err, ErrPanic)))
		return t
	}
	v, _ := t.res.Value()
	logger.Debug(msg, zap.Any("result", v))
	return t
}

func (t Try[T]) String() string {
	if err := t.Err(); err != nil {
		return fmt.Sprintf("Try.Error: %v", err)
	}
	v, _ := t.res.Value()
	return fmt.Sprintf("Try.Success: %v", v)
}

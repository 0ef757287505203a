package union

import "fmt"

// Result is either a success carrying S or a failure carrying E.
// The zero value is a success holding the zero S.
type Result[S, E any] struct {
	failed bool
	value  S
	err    E
}

func Ok[S, E any](value S) Result[S, E] {
	return Result[S, E]{value: value}
}

func Err[S, E any](err E) Result[S, E] {
	return Result[S, E]{failed: true, err: err}
}

func (r Result[S, E]) IsOk() bool { return !r.failed }

// Value returns the success payload and whether there is one.
func (r Result[S, E]) Value() (S, bool) {
	return r.value, !r.failed
}

// Error returns the failure payload and whether there is one.
func (r Result[S, E]) Error() (E, bool) {
	return r.err, r.failed
}

// Match calls exactly one of onOk and onErr with the payload.
func Match[S, E, R any](r Result[S, E], onOk func(S) R, onErr func(E) R) R {
	if r.failed {
		return onErr(r.err)
	}
	return onOk(r.value)
}

func (r Result[S, E]) String() string {
	if r.failed {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

package ratio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrSyntax is returned by Parse for input that is not "n" or "n/d".
var ErrSyntax = errors.New("ratio: invalid syntax")

// String returns "n/d".
func (r Ratio) String() string {
	return strconv.FormatInt(int64(r.num), 10) + "/" + strconv.FormatInt(int64(r.Denominator()), 10)
}

// Format prints the value for the float verbs and "n/d" for everything else.
func (r Ratio) Format(f fmt.State, verb rune) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), r.Float64())
	default:
		_, _ = io.WriteString(f, r.String())
	}
}

// Parse reads "n/d" or a bare integer "n". Surrounding spaces are ignored.
func Parse(s string) (Ratio, error) {
	ns, ds, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.ParseInt(strings.TrimSpace(ns), 10, 32)
	if err != nil {
		return Ratio{}, errors.Wrapf(ErrSyntax, "parse %q: numerator", s)
	}
	if !hasDen {
		return FromInt(int32(n)), nil
	}
	d, err := strconv.ParseInt(strings.TrimSpace(ds), 10, 32)
	if err != nil {
		return Ratio{}, errors.Wrapf(ErrSyntax, "parse %q: denominator", s)
	}
	r, err := New(int32(n), int32(d))
	if err != nil {
		return Ratio{}, errors.Wrapf(err, "parse %q", s)
	}
	return r, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Ratio {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// MarshalText implements encoding.TextMarshaler.
func (r Ratio) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Ratio) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

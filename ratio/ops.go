package ratio

import (
	"github.com/cockroachdb/errors"

	"kit/mathx"
)

// Plus returns r unchanged.
func (r Ratio) Plus() Ratio { return r }

// Neg returns -r. It fails only for a numerator of math.MinInt32.
func (r Ratio) Neg() (Ratio, error) {
	return fromInt64(-int64(r.num), int64(r.Denominator()))
}

// Add returns r + s as (rn*sd + sn*rd) / (rd*sd).
func (r Ratio) Add(s Ratio) (Ratio, error) {
	rn, rd := r.wide()
	sn, sd := s.wide()
	n, err := mathx.AddInt64(rn*sd, sn*rd)
	if err != nil {
		return Ratio{}, opErr(err, "+", r, s)
	}
	return narrow(n, rd*sd, "+", r, s)
}

// Sub returns r - s as (rn*sd - sn*rd) / (rd*sd).
func (r Ratio) Sub(s Ratio) (Ratio, error) {
	rn, rd := r.wide()
	sn, sd := s.wide()
	n, err := mathx.SubInt64(rn*sd, sn*rd)
	if err != nil {
		return Ratio{}, opErr(err, "-", r, s)
	}
	return narrow(n, rd*sd, "-", r, s)
}

// Mul returns r * s as (rn*sn) / (rd*sd).
func (r Ratio) Mul(s Ratio) (Ratio, error) {
	rn, rd := r.wide()
	sn, sd := s.wide()
	return narrow(rn*sn, rd*sd, "*", r, s)
}

// Div returns r / s as (rn*sd) / (rd*sn). Dividing by zero is ErrZeroDenominator.
func (r Ratio) Div(s Ratio) (Ratio, error) {
	rn, rd := r.wide()
	sn, sd := s.wide()
	return narrow(rn*sd, rd*sn, "/", r, s)
}

// AddInt returns r + n as (rn + rd*n) / rd.
func (r Ratio) AddInt(n int32) (Ratio, error) {
	return r.Add(FromInt(n))
}

// SubInt returns r - n as (rn - rd*n) / rd.
func (r Ratio) SubInt(n int32) (Ratio, error) {
	return r.Sub(FromInt(n))
}

// MulInt returns r * n as (rn*n) / rd.
func (r Ratio) MulInt(n int32) (Ratio, error) {
	return r.Mul(FromInt(n))
}

// DivInt returns r / n as rn / (rd*n).
func (r Ratio) DivInt(n int32) (Ratio, error) {
	return r.Div(FromInt(n))
}

// IntAdd returns n + r.
func IntAdd(n int32, r Ratio) (Ratio, error) {
	return FromInt(n).Add(r)
}

// IntSub returns n - r as (rd*n - rn) / rd.
func IntSub(n int32, r Ratio) (Ratio, error) {
	return FromInt(n).Sub(r)
}

// IntMul returns n * r.
func IntMul(n int32, r Ratio) (Ratio, error) {
	return FromInt(n).Mul(r)
}

// IntDiv returns n / r as (n*rd) / rn.
func IntDiv(n int32, r Ratio) (Ratio, error) {
	return FromInt(n).Div(r)
}

// wide returns the components widened to int64. Products of two such values never overflow.
func (r Ratio) wide() (int64, int64) {
	return int64(r.num), int64(r.Denominator())
}

func narrow(n, d int64, op string, r, s Ratio) (Ratio, error) {
	res, err := fromInt64(n, d)
	if err != nil {
		return Ratio{}, opErr(err, op, r, s)
	}
	return res, nil
}

func opErr(err error, op string, r, s Ratio) error {
	return errors.Wrapf(err, "%s %s %s", r, op, s)
}

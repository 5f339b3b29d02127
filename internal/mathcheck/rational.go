package mathcheck

import "fmt"

// rat is an exact fraction with a positive denominator in lowest terms.
type rat struct {
	n, d int64
}

func whole(n int64) rat { return rat{n: n, d: 1} }

func newRat(n, d int64) (rat, error) {
	if d == 0 {
		return rat{}, fmt.Errorf("division by zero")
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs(n), d)
	return rat{n: n / g, d: d / g}, nil
}

func (r rat) isInt() bool { return r.d == 1 }

func (r rat) add(o rat) rat {
	v, _ := newRat(r.n*o.d+o.n*r.d, r.d*o.d)
	return v
}

func (r rat) sub(o rat) rat {
	return r.add(rat{n: -o.n, d: o.d})
}

func (r rat) mul(o rat) rat {
	v, _ := newRat(r.n*o.n, r.d*o.d)
	return v
}

func (r rat) div(o rat) (rat, error) {
	return newRat(r.n*o.d, r.d*o.n)
}

func (r rat) mod(o rat) (rat, error) {
	if !r.isInt() || !o.isInt() {
		return rat{}, fmt.Errorf("mod needs integer operands")
	}
	if o.n == 0 {
		return rat{}, fmt.Errorf("modulo by zero")
	}
	return whole(r.n % o.n), nil
}

func (r rat) pow(o rat) (rat, error) {
	if !o.isInt() || o.n < 0 || o.n > 62 {
		return rat{}, fmt.Errorf("unsupported exponent %s", o)
	}
	out := whole(1)
	for range o.n {
		out = out.mul(r)
	}
	return out, nil
}

func (r rat) String() string {
	if r.d == 1 {
		return fmt.Sprintf("%d", r.n)
	}
	return fmt.Sprintf("%d/%d", r.n, r.d)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

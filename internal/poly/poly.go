// Package poly provides dense single-variable polynomials with float64
// coefficients.
package poly

import (
	"fmt"
	"strconv"
	"strings"
)

// EmptyPolynomialError is returned when a polynomial is built from no
// coefficients.
type EmptyPolynomialError struct{}

func (e *EmptyPolynomialError) Error() string {
	return "polynomial requires at least one coefficient"
}

// Polynomial stores coefficients lowest degree first. Trailing zeros are
// trimmed so Degree is minimal; the zero polynomial keeps one coefficient.
type Polynomial struct {
	coeffs []float64
}

// New creates a polynomial from coefficients ordered lowest degree first.
func New(coeffs ...float64) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, &EmptyPolynomialError{}
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Polynomial{coeffs: trim(c)}, nil
}

// Parse reads comma-separated coefficients, e.g. "1,0,-2" for 1 - 2x^2.
func Parse(s string) (*Polynomial, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &EmptyPolynomialError{}
	}
	fields := strings.Split(s, ",")
	coeffs := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coeffs[i] = v
	}
	return New(coeffs...)
}

func trim(c []float64) []float64 {
	n := len(c)
	for n > 1 && c[n-1] == 0 {
		n--
	}
	return c[:n]
}

// Degree returns the index of the highest non-zero coefficient, or 0 for
// the zero polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p *Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	return combine(p, q, 1)
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return combine(p, q, -1)
}

// combine pads to the longer operand and adds sign*q term by term.
func combine(p, q *Polynomial, sign float64) *Polynomial {
	out := make([]float64, max(len(p.coeffs), len(q.coeffs)))
	copy(out, p.coeffs)
	for i, c := range q.coeffs {
		out[i] += sign * c
	}
	return &Polynomial{coeffs: trim(out)}
}

// Mul returns p * q.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	out := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}
	return &Polynomial{coeffs: trim(out)}
}

// Eval evaluates the polynomial at x using Horner's method.
func (p *Polynomial) Eval(x float64) float64 {
	var result float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result*x + p.coeffs[i]
	}
	return result
}

// String formats the polynomial highest degree first, e.g. "3x^2 - x + 1".
func (p *Polynomial) String() string {
	var sb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 && len(p.coeffs) > 1 {
			continue
		}
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		} else if c < 0 {
			sb.WriteByte('-')
			c = -c
		}
		if c != 1 || i == 0 {
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
		switch {
		case i == 1:
			sb.WriteByte('x')
		case i > 1:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}
	return sb.String()
}

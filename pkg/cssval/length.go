package cssval

import (
	"math"
	"strconv"

	"github.com/arthur-debert/grugui/pkg/errors"
)

// Unit is a CSS length unit
type Unit string

const (
	UnitPx      Unit = "px"
	UnitPt      Unit = "pt"
	UnitPc      Unit = "pc"
	UnitIn      Unit = "in"
	UnitCm      Unit = "cm"
	UnitMm      Unit = "mm"
	UnitQ       Unit = "Q"
	UnitVw      Unit = "vw"
	UnitVh      Unit = "vh"
	UnitEm      Unit = "em"
	UnitRem     Unit = "rem"
	UnitPercent Unit = "%"
)

// pxPer holds the size of one unit in px for the absolute units
var pxPer = map[Unit]float64{
	UnitPx: 1,
	UnitPt: 96.0 / 72.0,
	UnitPc: 16,
	UnitIn: 96,
	UnitCm: 96 / 2.54,
	UnitMm: 96 / 25.4,
	UnitQ:  96 / 101.6,
}

// ratios[from][to] multiplies a value in from into one in to
var ratios = func() map[Unit]map[Unit]float64 {
	r := make(map[Unit]map[Unit]float64, len(pxPer))
	for from, f := range pxPer {
		r[from] = make(map[Unit]float64, len(pxPer))
		for to, t := range pxPer {
			r[from][to] = f / t
		}
	}
	return r
}()

// conversionDecimals bounds the noise conversions can introduce
const conversionDecimals = 9

// approxTolerance is the relative tolerance of ApproxEq
const approxTolerance = 1e-6

// IsAbsolute reports whether u converts to the other absolute units
func (u Unit) IsAbsolute() bool {
	_, ok := pxPer[u]
	return ok
}

// Length is a number with a unit
type Length struct {
	Value float64
	Unit  Unit
}

func Px(v float64) Length      { return Length{v, UnitPx} }
func Pt(v float64) Length      { return Length{v, UnitPt} }
func Pc(v float64) Length      { return Length{v, UnitPc} }
func In(v float64) Length      { return Length{v, UnitIn} }
func Cm(v float64) Length      { return Length{v, UnitCm} }
func Mm(v float64) Length      { return Length{v, UnitMm} }
func Q(v float64) Length       { return Length{v, UnitQ} }
func Vw(v float64) Length      { return Length{v, UnitVw} }
func Vh(v float64) Length      { return Length{v, UnitVh} }
func Em(v float64) Length      { return Length{v, UnitEm} }
func Rem(v float64) Length     { return Length{v, UnitRem} }
func Percent(v float64) Length { return Length{v, UnitPercent} }

// String formats the length as CSS, "5vw" or "-1%"
func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + string(l.Unit)
}

// Add sums two lengths of the same unit
func (l Length) Add(o Length) (Length, error) {
	if err := l.sameUnit("add", o); err != nil {
		return Length{}, err
	}
	return Length{l.Value + o.Value, l.Unit}, nil
}

// Sub subtracts two lengths of the same unit
func (l Length) Sub(o Length) (Length, error) {
	if err := l.sameUnit("subtract", o); err != nil {
		return Length{}, err
	}
	return Length{l.Value - o.Value, l.Unit}, nil
}

// Mul scales the length
func (l Length) Mul(f float64) Length {
	return Length{l.Value * f, l.Unit}
}

// Div divides the length by f
func (l Length) Div(f float64) (Length, error) {
	if f == 0 {
		return Length{}, errors.New(errors.ErrInvalidInput, "division of a length by zero")
	}
	return Length{l.Value / f, l.Unit}, nil
}

// Ratio divides two lengths of the same unit
func (l Length) Ratio(o Length) (float64, error) {
	if err := l.sameUnit("divide", o); err != nil {
		return 0, err
	}
	if o.Value == 0 {
		return 0, errors.New(errors.ErrInvalidInput, "division by a zero length")
	}
	return l.Value / o.Value, nil
}

// Eq reports exact equality, unit included
func (l Length) Eq(o Length) bool {
	return l == o
}

// ApproxEq compares within a small tolerance, converting o to l's unit when
// both are absolute
func (l Length) ApproxEq(o Length) bool {
	if o.Unit != l.Unit {
		conv, err := o.To(l.Unit)
		if err != nil {
			return false
		}
		o = conv
	}
	return math.Abs(l.Value-o.Value) <= approxTolerance*math.Max(1, math.Abs(l.Value))
}

// To converts the length to another absolute unit
func (l Length) To(u Unit) (Length, error) {
	if l.Unit == u {
		return l, nil
	}
	if !l.Unit.IsAbsolute() || !u.IsAbsolute() {
		return Length{}, errors.Newf(errors.ErrInvalidInput, "cannot convert %s to %s", l.Unit, u).
			WithDetail("from", string(l.Unit)).
			WithDetail("to", string(u))
	}
	return Length{round(l.Value*ratios[l.Unit][u], conversionDecimals), u}, nil
}

func (l Length) ToPx() (Length, error) { return l.To(UnitPx) }
func (l Length) ToPt() (Length, error) { return l.To(UnitPt) }
func (l Length) ToIn() (Length, error) { return l.To(UnitIn) }
func (l Length) ToCm() (Length, error) { return l.To(UnitCm) }
func (l Length) ToMm() (Length, error) { return l.To(UnitMm) }

func (l Length) sameUnit(op string, o Length) error {
	if l.Unit == o.Unit {
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "cannot %s %s and %s", op, l, o).
		WithDetail("left", string(l.Unit)).
		WithDetail("right", string(o.Unit))
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

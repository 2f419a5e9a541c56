package cssval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is an 8-bit per channel color
type RGBA struct {
	R, G, B, A uint8
}

// RGB builds a color, clamping every channel to [0,255]. Alpha defaults to
// opaque.
func RGB(r, g, b int, a ...int) RGBA {
	alpha := 255
	if len(a) > 0 {
		alpha = a[0]
	}
	return RGBA{clamp(float64(r)), clamp(float64(g)), clamp(float64(b)), clamp(float64(alpha))}
}

// Hex parses #RGB, #RGBA, #RRGGBB or #RRGGBBAA, the # being optional
func Hex(s string) (RGBA, error) {
	digits := strings.TrimPrefix(s, "#")
	switch len(digits) {
	case 3, 4:
		var long strings.Builder
		for _, d := range digits {
			long.WriteRune(d)
			long.WriteRune(d)
		}
		digits = long.String()
	case 6, 8:
	default:
		return RGBA{}, errors.Newf(errors.ErrInvalidInput, "invalid hex color %q", s)
	}
	if len(digits) == 6 {
		digits += "ff"
	}

	var ch [4]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGBA{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid hex color %q", s)
		}
		ch[i] = uint8(v)
	}
	return RGBA{ch[0], ch[1], ch[2], ch[3]}, nil
}

// MustHex is Hex that panics on malformed input
func MustHex(s string) RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Mul scales the color channels, leaving alpha alone
func (c RGBA) Mul(f float64) RGBA {
	return RGBA{
		clamp(float64(c.R) * f),
		clamp(float64(c.G) * f),
		clamp(float64(c.B) * f),
		c.A,
	}
}

// MulChannels scales each channel by its own factor. A fourth factor scales
// alpha.
func (c RGBA) MulChannels(f ...float64) (RGBA, error) {
	if len(f) != 3 && len(f) != 4 {
		return RGBA{}, errors.Newf(errors.ErrInvalidInput, "expected 3 or 4 channel factors, got %d", len(f))
	}
	out := RGBA{
		clamp(float64(c.R) * f[0]),
		clamp(float64(c.G) * f[1]),
		clamp(float64(c.B) * f[2]),
		c.A,
	}
	if len(f) == 4 {
		out.A = clamp(float64(c.A) * f[3])
	}
	return out, nil
}

// Mix blends c towards o, t=0 giving c and t=1 giving o
func (c RGBA) Mix(o RGBA, t float64) RGBA {
	t = math.Max(0, math.Min(1, t))
	r, g, b := c.Colorful().BlendRgb(o.Colorful(), t).Clamped().RGB255()
	return RGBA{r, g, b, clamp(float64(c.A) + (float64(o.A)-float64(c.A))*t)}
}

// Colorful converts the color channels, alpha dropped
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts an opaque colorful.Color
func FromColorful(cf colorful.Color) RGBA {
	r, g, b := cf.Clamped().RGB255()
	return RGBA{r, g, b, 255}
}

// HexString returns the shortest exact hex form. Alpha is omitted when the
// color is opaque.
func (c RGBA) HexString() string {
	ch := []uint8{c.R, c.G, c.B}
	if c.A != 255 {
		ch = append(ch, c.A)
	}

	short := true
	for _, v := range ch {
		if v>>4 != v&0xF {
			short = false
			break
		}
	}

	var sb strings.Builder
	sb.WriteByte('#')
	for _, v := range ch {
		if short {
			fmt.Fprintf(&sb, "%X", v&0xF)
			continue
		}
		fmt.Fprintf(&sb, "%02X", v)
	}
	return sb.String()
}

// String implements fmt.Stringer with the hex form
func (c RGBA) String() string {
	return c.HexString()
}

func clamp(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Floor(v + 0.5))
	}
}

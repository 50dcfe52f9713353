package colormodel

import (
	"image/color"
	"math"
)

// Color is a mutable color value with chainable modifiers. It is owned by
// a single goroutine; concurrent use must be serialized by the caller.
//
//	c, _ := New("#3366cc")
//	c.Lighten(0.1).Rotate(30)
//	fmt.Println(c) // hsl(...)
type Color struct {
	rec Record
}

// New parses text into a Color.
func New(text string) (*Color, error) {
	rec, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return &Color{rec: rec}, nil
}

// FromRecord wraps an existing record.
func FromRecord(rec Record) *Color {
	return &Color{rec: rec}
}

// NewRGBA builds an RGB color; channels are clamped to [0, 255].
func NewRGBA(r, g, b, a float64) *Color {
	return &Color{rec: NewRecord(ModelRGB, a,
		clampFloat(r, 0, 255), clampFloat(g, 0, 255), clampFloat(b, 0, 255))}
}

// FromImageColor converts any image/color value, undoing alpha
// premultiplication.
func FromImageColor(c color.Color) *Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewRGBA(float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255)
}

// Record returns a copy of the underlying record.
func (c *Color) Record() Record { return c.rec }

// Model returns the live model.
func (c *Color) Model() Model { return c.rec.model }

// Clone returns an independent copy.
func (c *Color) Clone() *Color {
	return &Color{rec: c.rec}
}

// Get reads any channel. Channels outside the live model are computed on
// a converted copy; the color itself is left untouched.
func (c *Color) Get(ch Channel) (float64, error) {
	rec, _, err := EnsureSpace(c.rec, ch.Model)
	if err != nil {
		return 0, err
	}
	v, _ := rec.Channel(ch)
	return v, nil
}

// Set writes any channel, switching the live model to the channel's model
// first when needed.
func (c *Color) Set(ch Channel, v float64) error {
	rec, _, err := EnsureSpace(c.rec, ch.Model)
	if err != nil {
		return err
	}
	rec, ok := rec.WithChannel(ch, v)
	if !ok {
		return &UnknownModelError{Name: ch.Name}
	}
	c.rec = rec
	return nil
}

// To switches the live model.
func (c *Color) To(m Model) error {
	rec, _, err := EnsureSpace(c.rec, m)
	if err != nil {
		return err
	}
	c.rec = rec
	return nil
}

// space switches to m. The conversion graph connects every model, so the
// error from EnsureSpace cannot happen for a valid Model.
func (c *Color) space(m Model) *Color {
	if rec, _, err := EnsureSpace(c.rec, m); err == nil {
		c.rec = rec
	}
	return c
}

// update applies fn to the channels of model m.
func (c *Color) update(m Model, fn func(v *[4]float64)) *Color {
	c.space(m)
	if c.rec.model != m {
		return c
	}
	v := c.rec.values
	fn(&v)
	c.rec = NewRecord(m, c.rec.alpha, v[:m.Arity()]...)
	return c
}

func (c *Color) rgb(fn func(v *[4]float64)) *Color {
	return c.update(ModelRGB, func(v *[4]float64) {
		fn(v)
		for i := 0; i < 3; i++ {
			v[i] = clampFloat(v[i], 0, 255)
		}
	})
}

// Red sets the red channel in [0, 255].
func (c *Color) Red(v float64) *Color {
	return c.rgb(func(ch *[4]float64) { ch[0] = v })
}

// Green sets the green channel in [0, 255].
func (c *Color) Green(v float64) *Color {
	return c.rgb(func(ch *[4]float64) { ch[1] = v })
}

// Blue sets the blue channel in [0, 255].
func (c *Color) Blue(v float64) *Color {
	return c.rgb(func(ch *[4]float64) { ch[2] = v })
}

// Alpha sets alpha in [0, 1]. CMYK colors stay opaque.
func (c *Color) Alpha(a float64) *Color {
	c.rec = c.rec.WithAlpha(a)
	return c
}

// Reddish adds value to the red channel.
func (c *Color) Reddish(value float64) *Color {
	return c.rgb(func(ch *[4]float64) { ch[0] += value })
}

// Greenish adds value to the green channel.
func (c *Color) Greenish(value float64) *Color {
	return c.rgb(func(ch *[4]float64) { ch[1] += value })
}

// Bluish adds value to the blue channel.
func (c *Color) Bluish(value float64) *Color {
	return c.rgb(func(ch *[4]float64) { ch[2] += value })
}

// Lighten adds amount*255 to every RGB channel; amount is in [0, 1].
func (c *Color) Lighten(amount float64) *Color {
	f := amount * 255
	return c.rgb(func(ch *[4]float64) {
		ch[0] += f
		ch[1] += f
		ch[2] += f
	})
}

// Darken subtracts amount*255 from every RGB channel.
func (c *Color) Darken(amount float64) *Color {
	return c.Lighten(-amount)
}

// Invert replaces every RGB channel with its complement.
func (c *Color) Invert() *Color {
	return c.rgb(func(ch *[4]float64) {
		ch[0] = 255 - ch[0]
		ch[1] = 255 - ch[1]
		ch[2] = 255 - ch[2]
	})
}

// Grayscale drops the HSL saturation.
func (c *Color) Grayscale() *Color {
	return c.update(ModelHSL, func(ch *[4]float64) { ch[1] = 0 })
}

// Rotate turns the HSL hue by deg degrees.
func (c *Color) Rotate(deg float64) *Color {
	return c.update(ModelHSL, func(ch *[4]float64) { ch[0] += deg })
}

// Saturate scales the HSL saturation up by ratio (0.5 is +50%).
func (c *Color) Saturate(ratio float64) *Color {
	return c.update(ModelHSL, func(ch *[4]float64) {
		ch[1] = clampFloat(ch[1]+ch[1]*ratio, 0, 100)
	})
}

// Desaturate scales the HSL saturation down by ratio.
func (c *Color) Desaturate(ratio float64) *Color {
	return c.Saturate(-ratio)
}

// Whiten scales the HWB whiteness up by ratio.
func (c *Color) Whiten(ratio float64) *Color {
	return c.update(ModelHWB, func(ch *[4]float64) {
		ch[1] = clampFloat(ch[1]+ch[1]*ratio, 0, 100)
	})
}

// Blacken scales the HWB blackness up by ratio.
func (c *Color) Blacken(ratio float64) *Color {
	return c.update(ModelHWB, func(ch *[4]float64) {
		ch[2] = clampFloat(ch[2]+ch[2]*ratio, 0, 100)
	})
}

// Fade scales alpha down by ratio.
func (c *Color) Fade(ratio float64) *Color {
	return c.Alpha(c.rec.alpha - c.rec.alpha*ratio)
}

// Opaquer scales alpha up by ratio.
func (c *Color) Opaquer(ratio float64) *Color {
	return c.Alpha(c.rec.alpha + c.rec.alpha*ratio)
}

// Mix blends other into c in RGB. weight is the share of other, in [0, 1].
func (c *Color) Mix(other *Color, weight float64) *Color {
	w := clampFloat(weight, 0, 1)
	o, err := Convert(other.rec, ModelRGB)
	if err != nil {
		return c
	}
	alpha := c.rec.alpha*(1-w) + o.alpha*w
	c.rgb(func(ch *[4]float64) {
		for i := 0; i < 3; i++ {
			ch[i] = ch[i]*(1-w) + o.values[i]*w
		}
	})
	return c.Alpha(alpha)
}

// luminance is the YIQ brightness in [0, 255].
func (c *Color) luminance() float64 {
	rec, err := Convert(c.rec, ModelRGB)
	if err != nil {
		return 0
	}
	v := rec.values
	return (v[0]*299 + v[1]*587 + v[2]*114) / 1000
}

// IsDark reports whether the YIQ brightness is below 128.
func (c *Color) IsDark() bool { return c.luminance() < 128 }

// IsLight is the negation of IsDark.
func (c *Color) IsLight() bool { return !c.IsDark() }

// RGBA returns the color as 8-bit-range RGB with alpha.
func (c *Color) RGBA() RGBA {
	rec, err := Convert(c.rec, ModelRGB)
	if err != nil {
		return RGBA{}
	}
	return RGBA{R: rec.values[0], G: rec.values[1], B: rec.values[2], A: rec.alpha}
}

// NRGBA returns the color as a non-premultiplied image/color value.
func (c *Color) NRGBA() color.NRGBA {
	v := c.RGBA()
	return color.NRGBA{
		R: uint8(Clamp(v.R, 0, 255)),
		G: uint8(Clamp(v.G, 0, 255)),
		B: uint8(Clamp(v.B, 0, 255)),
		A: uint8(math.Round(clampFloat(v.A, 0, 1) * 255)),
	}
}

// Hex renders #rrggbb, or #rrggbbaa when translucent.
func (c *Color) Hex() string {
	s, _ := RenderAs(c.rec, "hex")
	return s
}

// Format renders the live record with a template.
func (c *Color) Format(template string) string { return Format(c.rec, template) }

// String renders the color in its live model.
func (c *Color) String() string { return Render(c.rec) }

// Closest resolves the nearest named color in table.
func (c *Color) Closest(table Table) (Match, error) {
	return Closest(c.RGBA(), table)
}

// Package colormodel parses, converts, formats and names colors.
//
// A color is held in a Record: the channel values of exactly one live model
// (rgb, hsl, lab, lch, hwb, xyz, cmyk, oklab, oklch) plus an alpha in [0, 1].
// Other models are computed on demand through an explicit conversion graph.
//
// # Parsing
//
// Parse detects the notation of a CSS-like color string and builds a record:
//
//	#f08, #ff008080
//	rgb(255, 0, 128), rgba(255 0 128 / 50%)
//	hsl(330deg 100% 50%), hwb(0.5turn 10% 20%)
//	lab(54 81 -20), lch(54 83 346), oklab(0.65 0.26 -0.03), oklch(0.65 0.26 354)
//	xyz(41 21 21), cmyk(0, 100, 50, 0), color(srgb 1 0 0.5 / 0.5)
//
// Channel tokens accept numbers, percentages, angles (deg, rad, grad, turn)
// and simple calc() expressions. Malformed tokens inside a recognized
// notation never fail the parse: they resolve to a fallback value and a
// warning is sent to the package logger (see SetLogger). Only a string that
// matches no notation returns an *UnrecognizedFormatError.
//
// # Conversion
//
// Convert walks the conversion graph. LAB reaches RGB through XYZ, LCH goes
// through LAB and OKLCH through OKLab; HSL, HWB, CMYK, XYZ and OKLab are
// adjacent to RGB. ConversionPath and SupportedConversions describe the
// graph. Alpha survives every conversion except into CMYK, which has no
// alpha.
//
// # Formatting
//
// Format renders a record through a template of [selector:UNIT]
// placeholders, where selector is a 1-based channel index or A for alpha
// and UNIT is one of INT8, HEX, NORMALIZED, FLOAT16, PERCENT, DEGREE or
// NUMBER. Render and RenderAs use the named template of each model.
//
// # Named colors
//
// Closest returns the nearest entry of a Table by Euclidean distance in RGB.
// DefaultTable holds the SVG named colors; LoadTable reads a JSON table.
//
// # Thread Safety
//
// Functions and Record values are safe for concurrent use. A Color is a
// mutable single-owner value and must not be shared without locking.
package colormodel

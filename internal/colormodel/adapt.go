package colormodel

import (
	"fmt"
	"math"
	"strings"
)

// CIE constants in their exact rational form.
const (
	cieE = 216.0 / 24389.0
	cieK = 24389.0 / 27.0
)

// Mat3 is a 3x3 matrix applied to column vectors.
type Mat3 [3][3]float64

// Identity3 is the 3x3 identity matrix.
var Identity3 = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Mul returns m*v.
func (m Mat3) Mul(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// MulMat returns m*n.
func (m Mat3) MulMat(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// Det returns the determinant.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse matrix. A singular matrix yields the identity.
func (m Mat3) Inverse() Mat3 {
	det := m.Det()
	if det == 0 {
		return Identity3
	}
	s := 1 / det
	return Mat3{
		{
			s * (m[1][1]*m[2][2] - m[1][2]*m[2][1]),
			-s * (m[0][1]*m[2][2] - m[0][2]*m[2][1]),
			s * (m[0][1]*m[1][2] - m[0][2]*m[1][1]),
		},
		{
			-s * (m[1][0]*m[2][2] - m[1][2]*m[2][0]),
			s * (m[0][0]*m[2][2] - m[0][2]*m[2][0]),
			-s * (m[0][0]*m[1][2] - m[0][2]*m[1][0]),
		},
		{
			s * (m[1][0]*m[2][1] - m[1][1]*m[2][0]),
			-s * (m[0][0]*m[2][1] - m[0][1]*m[2][0]),
			s * (m[0][0]*m[1][1] - m[0][1]*m[1][0]),
		},
	}
}

// Illuminant is a reference white, normalized so that Y = 1.
type Illuminant struct {
	Name    string
	X, Y, Z float64
}

// Reference whites (ASTM E308-01, B from Wyszecki & Stiles).
var (
	IlluminantA   = Illuminant{"A", 1.09850, 1, 0.35585}
	IlluminantB   = Illuminant{"B", 0.99072, 1, 0.85223}
	IlluminantC   = Illuminant{"C", 0.98074, 1, 1.18232}
	IlluminantD50 = Illuminant{"D50", 0.96422, 1, 0.82521}
	IlluminantD55 = Illuminant{"D55", 0.95682, 1, 0.92149}
	IlluminantD65 = Illuminant{"D65", 0.95047, 1, 1.08883}
	IlluminantD75 = Illuminant{"D75", 0.94972, 1, 1.22638}
	IlluminantE   = Illuminant{"E", 1, 1, 1}
	IlluminantF2  = Illuminant{"F2", 0.99186, 1, 0.67393}
	IlluminantF7  = Illuminant{"F7", 0.95041, 1, 1.08747}
	IlluminantF11 = Illuminant{"F11", 1.00962, 1, 0.64350}
)

var illuminants = []Illuminant{
	IlluminantA, IlluminantB, IlluminantC, IlluminantD50, IlluminantD55, IlluminantD65,
	IlluminantD75, IlluminantE, IlluminantF2, IlluminantF7, IlluminantF11,
}

func (w Illuminant) vec() [3]float64 { return [3]float64{w.X, w.Y, w.Z} }

// GammaMode selects a companding curve.
type GammaMode int

const (
	// GammaNative uses the working space's own curve.
	GammaNative GammaMode = iota
	Gamma10
	Gamma18
	Gamma22
	GammaSRGB
	GammaLStar
)

var gammaNames = map[string]GammaMode{
	"native": GammaNative, "1.0": Gamma10, "1.8": Gamma18, "2.2": Gamma22, "srgb": GammaSRGB, "l*": GammaLStar,
}

// RGBSpace is an RGB working space: chromaticities of its primaries, its
// reference white and its native gamma.
type RGBSpace struct {
	Name           string
	XR, YR, XG, YG float64
	XB, YB         float64
	White          Illuminant
	Gamma          GammaMode
}

var (
	SpaceAdobe1998  = RGBSpace{"Adobe RGB (1998)", 0.64, 0.33, 0.21, 0.71, 0.15, 0.06, IlluminantD65, Gamma22}
	SpaceApple      = RGBSpace{"Apple RGB", 0.625, 0.34, 0.28, 0.595, 0.155, 0.07, IlluminantD65, Gamma18}
	SpaceBest       = RGBSpace{"Best RGB", 0.7347, 0.2653, 0.215, 0.775, 0.13, 0.035, IlluminantD50, Gamma22}
	SpaceBeta       = RGBSpace{"Beta RGB", 0.6888, 0.3112, 0.1986, 0.7551, 0.1265, 0.0352, IlluminantD50, Gamma22}
	SpaceBruce      = RGBSpace{"Bruce RGB", 0.64, 0.33, 0.28, 0.65, 0.15, 0.06, IlluminantD65, Gamma22}
	SpaceCIE        = RGBSpace{"CIE RGB", 0.735, 0.265, 0.274, 0.717, 0.167, 0.009, IlluminantE, Gamma22}
	SpaceColorMatch = RGBSpace{"ColorMatch RGB", 0.63, 0.34, 0.295, 0.605, 0.15, 0.075, IlluminantD50, Gamma18}
	SpaceDon4       = RGBSpace{"Don RGB 4", 0.696, 0.3, 0.215, 0.765, 0.13, 0.035, IlluminantD50, Gamma22}
	SpaceECIv2      = RGBSpace{"ECI RGB v2", 0.67, 0.33, 0.21, 0.71, 0.14, 0.08, IlluminantD50, GammaLStar}
	SpaceEktaPS5    = RGBSpace{"Ekta Space PS5", 0.695, 0.305, 0.26, 0.7, 0.11, 0.005, IlluminantD50, Gamma22}
	SpaceNTSC       = RGBSpace{"NTSC RGB", 0.67, 0.33, 0.21, 0.71, 0.14, 0.08, IlluminantC, Gamma22}
	SpacePALSECAM   = RGBSpace{"PAL/SECAM RGB", 0.64, 0.33, 0.29, 0.6, 0.15, 0.06, IlluminantD65, Gamma22}
	SpaceProPhoto   = RGBSpace{"ProPhoto RGB", 0.7347, 0.2653, 0.1596, 0.8404, 0.0366, 0.0001, IlluminantD50, Gamma18}
	SpaceSMPTEC     = RGBSpace{"SMPTE-C RGB", 0.63, 0.34, 0.31, 0.595, 0.155, 0.07, IlluminantD65, Gamma22}
	SpaceSRGB       = RGBSpace{"sRGB", 0.64, 0.33, 0.3, 0.6, 0.15, 0.06, IlluminantD65, GammaSRGB}
	SpaceWideGamut  = RGBSpace{"Wide Gamut RGB", 0.735, 0.265, 0.115, 0.826, 0.157, 0.018, IlluminantD50, Gamma22}
)

var rgbSpaces = []RGBSpace{
	SpaceAdobe1998, SpaceApple, SpaceBest, SpaceBeta, SpaceBruce, SpaceCIE, SpaceColorMatch, SpaceDon4,
	SpaceECIv2, SpaceEktaPS5, SpaceNTSC, SpacePALSECAM, SpaceProPhoto, SpaceSMPTEC, SpaceSRGB, SpaceWideGamut,
}

// AdaptationMethod selects the cone response used for chromatic adaptation.
type AdaptationMethod int

const (
	Bradford AdaptationMethod = iota
	VonKries
	XYZScaling
	NoAdaptation
)

var adaptationNames = map[string]AdaptationMethod{
	"bradford": Bradford, "vonkries": VonKries, "von kries": VonKries, "von-kries": VonKries,
	"xyzscaling": XYZScaling, "xyz scaling": XYZScaling, "xyz-scaling": XYZScaling, "none": NoAdaptation,
}

func (a AdaptationMethod) coneMatrix() Mat3 {
	switch a {
	case Bradford:
		return Mat3{
			{0.8951, 0.2664, -0.1614},
			{-0.7502, 1.7135, 0.0367},
			{0.0389, -0.0685, 1.0296},
		}
	case VonKries:
		return Mat3{
			{0.40024, 0.7076, -0.08081},
			{-0.2263, 1.16532, 0.0457},
			{0, 0, 0.91822},
		}
	}
	return Identity3
}

// AdaptationConfig selects the LAB reference white, the RGB working space,
// the companding curve and the adaptation method.
type AdaptationConfig struct {
	RefWhite Illuminant
	Working  RGBSpace
	Gamma    GammaMode
	Method   AdaptationMethod
}

// DefaultAdaptationConfig is D50 LAB into sRGB with Bradford adaptation.
func DefaultAdaptationConfig() AdaptationConfig {
	return AdaptationConfig{
		RefWhite: IlluminantD50,
		Working:  SpaceSRGB,
		Gamma:    GammaSRGB,
		Method:   Bradford,
	}
}

func (cfg AdaptationConfig) withDefaults() AdaptationConfig {
	def := DefaultAdaptationConfig()
	if cfg.RefWhite.Y == 0 {
		cfg.RefWhite = def.RefWhite
	}
	if cfg.Working.YR == 0 {
		cfg.Working = def.Working
	}
	return cfg
}

// Matrices holds everything derived from an AdaptationConfig.
type Matrices struct {
	RGBToXYZ Mat3
	XYZToRGB Mat3
	// Adapt maps XYZ relative to the LAB white into XYZ relative to the
	// working space white.
	Adapt Mat3
	Gamma GammaMode
}

// DeriveMatrices computes the working-space and adaptation matrices for cfg.
// Zero-valued fields fall back to DefaultAdaptationConfig.
func DeriveMatrices(cfg AdaptationConfig) Matrices {
	cfg = cfg.withDefaults()
	ws := cfg.Working
	p := Mat3{
		{ws.XR / ws.YR, ws.XG / ws.YG, ws.XB / ws.YB},
		{1, 1, 1},
		{(1 - ws.XR - ws.YR) / ws.YR, (1 - ws.XG - ws.YG) / ws.YG, (1 - ws.XB - ws.YB) / ws.YB},
	}
	s := p.Inverse().Mul(ws.White.vec())

	var rgbToXYZ Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rgbToXYZ[i][j] = p[i][j] * s[j]
		}
	}

	adapt := Identity3
	if cfg.Method != NoAdaptation {
		ma := cfg.Method.coneMatrix()
		src := ma.Mul(cfg.RefWhite.vec())
		dst := ma.Mul(ws.White.vec())
		scale := Mat3{
			{dst[0] / src[0], 0, 0},
			{0, dst[1] / src[1], 0},
			{0, 0, dst[2] / src[2]},
		}
		adapt = ma.Inverse().MulMat(scale).MulMat(ma)
	}

	gamma := cfg.Gamma
	if gamma == GammaNative {
		gamma = ws.Gamma
	}

	return Matrices{
		RGBToXYZ: rgbToXYZ,
		XYZToRGB: rgbToXYZ.Inverse(),
		Adapt:    adapt,
		Gamma:    gamma,
	}
}

// Compand applies the companding curve to a linear value, keeping its sign.
func Compand(linear float64, mode GammaMode) float64 {
	sign := 1.0
	if linear < 0 {
		sign = -1
	}
	v := math.Abs(linear)

	switch mode {
	case Gamma10:
	case Gamma18:
		v = math.Pow(v, 1/1.8)
	case Gamma22:
		v = math.Pow(v, 1/2.2)
	case GammaLStar:
		if v <= cieE {
			v = v * 24389 / 2700
		} else {
			v = 1.16*math.Cbrt(v) - 0.16
		}
	default:
		if v <= 0.0031308 {
			v *= 12.92
		} else {
			v = 1.055*math.Pow(v, 1/2.4) - 0.055
		}
	}
	return v * sign
}

// labToXYZWhite converts LAB to XYZ relative to white, Y in [0, 1].
func labToXYZWhite(lab [3]float64, white Illuminant) [3]float64 {
	fy := (lab[0] + 16) / 116
	fx := 0.002*lab[1] + fy
	fz := fy - 0.005*lab[2]

	inv := func(f float64) float64 {
		if f > math.Cbrt(cieE) {
			return f * f * f
		}
		return (116*f - 16) / cieK
	}

	yr := lab[0] / cieK
	if lab[0] > cieE*cieK {
		yr = fy * fy * fy
	}
	return [3]float64{inv(fx) * white.X, yr * white.Y, inv(fz) * white.Z}
}

// LabToRGBAdapted converts LAB under cfg.RefWhite into companded RGB of
// the working space. Channels are nominally in [0, 1] and are not clipped.
func LabToRGBAdapted(lab [3]float64, cfg AdaptationConfig) [3]float64 {
	cfg = cfg.withDefaults()
	m := DeriveMatrices(cfg)
	xyz := m.Adapt.Mul(labToXYZWhite(lab, cfg.RefWhite))
	lin := m.XYZToRGB.Mul(xyz)
	return [3]float64{
		Compand(lin[0], m.Gamma),
		Compand(lin[1], m.Gamma),
		Compand(lin[2], m.Gamma),
	}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseIlluminant resolves a reference white by name ("D65", "f11").
func ParseIlluminant(name string) (Illuminant, error) {
	for _, w := range illuminants {
		if strings.EqualFold(w.Name, strings.TrimSpace(name)) {
			return w, nil
		}
	}
	return Illuminant{}, fmt.Errorf("unknown illuminant: %q", name)
}

// ParseRGBSpace resolves a working space by name. The " RGB" suffix and
// the year are optional ("adobe", "prophoto", "srgb").
func ParseRGBSpace(name string) (RGBSpace, error) {
	want := normalizeName(name)
	for _, ws := range rgbSpaces {
		full := normalizeName(ws.Name)
		short := strings.Fields(full)[0]
		if want == full || want == short || want == strings.TrimSuffix(full, " rgb") {
			return ws, nil
		}
	}
	return RGBSpace{}, fmt.Errorf("unknown RGB working space: %q", name)
}

// ParseGammaMode resolves "native", "1.0", "1.8", "2.2", "srgb" or "l*".
func ParseGammaMode(name string) (GammaMode, error) {
	if g, ok := gammaNames[normalizeName(name)]; ok {
		return g, nil
	}
	return 0, fmt.Errorf("unknown gamma mode: %q", name)
}

// ParseAdaptationMethod resolves "bradford", "von kries", "xyz scaling" or
// "none".
func ParseAdaptationMethod(name string) (AdaptationMethod, error) {
	if a, ok := adaptationNames[normalizeName(name)]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown adaptation method: %q", name)
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "image_sample_color").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": string(text),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Parses colors or loads images from cache as needed
//  4. Calls the appropriate colormodel/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Model
	case "color_parse":
		return s.handleColorParse(args)
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_format":
		return s.handleColorFormat(args)
	case "color_closest":
		return s.handleColorClosest(args)
	case "color_adjust":
		return s.handleColorAdjust(args)
	case "color_compare":
		return s.handleColorCompare(args)
	case "color_swatch":
		return s.handleColorSwatch(args)
	case "color_adapt":
		return s.handleColorAdapt(args)

	// Image Colors
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// parseColor reads a color string. An explicit format skips detection;
// otherwise text that matches no format is looked up in the named-color
// table.
func (s *Server) parseColor(text, format string) (*colormodel.Color, string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, "", fmt.Errorf("color is required")
	}
	if format != "" {
		rec, err := colormodel.ParseAs(text, format)
		if err != nil {
			return nil, "", err
		}
		return colormodel.FromRecord(rec), strings.ToLower(format), nil
	}

	c, err := colormodel.New(text)
	if err == nil {
		return c, colormodel.DetectFormat(text), nil
	}
	var uerr *colormodel.UnrecognizedFormatError
	if errors.As(err, &uerr) {
		if named, ok := s.table.Lookup(text); ok {
			return colormodel.NewRGBA(float64(named.RGB[0]), float64(named.RGB[1]), float64(named.RGB[2]), 1), "name", nil
		}
	}
	return nil, "", err
}

// === Color Model Handlers ===

// ChannelValue is one named channel of a color.
type ChannelValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ColorInfo describes a color in its live model plus the common CSS forms.
type ColorInfo struct {
	Model    string         `json:"model"`
	Channels []ChannelValue `json:"channels"`
	Alpha    float64        `json:"alpha"`
	Text     string         `json:"text"`
	Hex      string         `json:"hex"`
	RGB      string         `json:"rgb"`
	HSL      string         `json:"hsl"`
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func describeColor(c *colormodel.Color) (*ColorInfo, error) {
	rec := c.Record()
	values := rec.Values()
	channels := make([]ChannelValue, 0, len(values))
	for i, ch := range colormodel.Channels(rec.Model()) {
		channels = append(channels, ChannelValue{Name: ch.Name, Value: round4(values[i])})
	}

	rgb, err := colormodel.RenderAs(rec, "rgb")
	if err != nil {
		return nil, err
	}
	hsl, err := colormodel.RenderAs(rec, "hsl")
	if err != nil {
		return nil, err
	}

	return &ColorInfo{
		Model:    rec.Model().String(),
		Channels: channels,
		Alpha:    round4(rec.Alpha()),
		Text:     c.String(),
		Hex:      c.Hex(),
		RGB:      rgb,
		HSL:      hsl,
	}, nil
}

type colorParseArgs struct {
	Color  string `json:"color"`
	Format string `json:"format"`
}

// ColorParseResult is the output of color_parse.
type ColorParseResult struct {
	Input  string `json:"input"`
	Format string `json:"format"`
	ColorInfo
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorParseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, format, err := s.parseColor(a.Color, a.Format)
	if err != nil {
		return nil, err
	}
	info, err := describeColor(c)
	if err != nil {
		return nil, err
	}
	return &ColorParseResult{Input: a.Color, Format: format, ColorInfo: *info}, nil
}

type colorConvertArgs struct {
	Color  string `json:"color"`
	Format string `json:"format"`
	To     string `json:"to"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, _, err := s.parseColor(a.Color, a.Format)
	if err != nil {
		return nil, err
	}
	m, err := colormodel.ParseModel(a.To)
	if err != nil {
		return nil, err
	}
	if err := c.To(m); err != nil {
		return nil, err
	}
	info, err := describeColor(c)
	if err != nil {
		return nil, err
	}
	// hex, hexa, color() and the alpha spellings render differently from
	// the model default.
	if info.Text, err = colormodel.RenderAs(c.Record(), a.To); err != nil {
		return nil, err
	}
	return info, nil
}

type colorFormatArgs struct {
	Color    string `json:"color"`
	Format   string `json:"format"`
	Template string `json:"template"`
	Model    string `json:"model"`
}

// ColorFormatResult is the output of color_format.
type ColorFormatResult struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

func (s *Server) handleColorFormat(args json.RawMessage) (interface{}, error) {
	var a colorFormatArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Template == "" {
		return nil, fmt.Errorf("template is required")
	}
	c, _, err := s.parseColor(a.Color, a.Format)
	if err != nil {
		return nil, err
	}
	if a.Model != "" {
		m, err := colormodel.ParseModel(a.Model)
		if err != nil {
			return nil, err
		}
		if err := c.To(m); err != nil {
			return nil, err
		}
	}
	return &ColorFormatResult{Model: c.Model().String(), Text: c.Format(a.Template)}, nil
}

type colorClosestArgs struct {
	Color  string `json:"color"`
	Format string `json:"format"`
}

// ColorClosestResult is the output of color_closest.
type ColorClosestResult struct {
	Name     string   `json:"name"`
	Hex      string   `json:"hex"`
	RGB      [3]uint8 `json:"rgb"`
	Distance float64  `json:"distance"`
	Exact    bool     `json:"exact"`
	Table    string   `json:"table"`
}

func (s *Server) handleColorClosest(args json.RawMessage) (interface{}, error) {
	var a colorClosestArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, _, err := s.parseColor(a.Color, a.Format)
	if err != nil {
		return nil, err
	}
	m, err := c.Closest(s.table)
	if err != nil {
		return nil, err
	}
	return &ColorClosestResult{
		Name:     m.Name,
		Hex:      fmt.Sprintf("#%02x%02x%02x", m.Color[0], m.Color[1], m.Color[2]),
		RGB:      m.Color,
		Distance: round4(m.Distance),
		Exact:    m.Distance == 0,
		Table:    s.table.Name,
	}, nil
}

type colorAdjustArgs struct {
	Color      string            `json:"color"`
	Format     string            `json:"format"`
	Operations []adjustOperation `json:"operations"`
}

type adjustOperation struct {
	Op    string   `json:"op"`
	Value *float64 `json:"value"`
	Color string   `json:"color"`
}

// adjustments maps operation names to Color modifiers taking one value.
var adjustments = map[string]func(*colormodel.Color, float64) *colormodel.Color{
	"red":        (*colormodel.Color).Red,
	"green":      (*colormodel.Color).Green,
	"blue":       (*colormodel.Color).Blue,
	"alpha":      (*colormodel.Color).Alpha,
	"reddish":    (*colormodel.Color).Reddish,
	"greenish":   (*colormodel.Color).Greenish,
	"bluish":     (*colormodel.Color).Bluish,
	"lighten":    (*colormodel.Color).Lighten,
	"darken":     (*colormodel.Color).Darken,
	"rotate":     (*colormodel.Color).Rotate,
	"saturate":   (*colormodel.Color).Saturate,
	"desaturate": (*colormodel.Color).Desaturate,
	"whiten":     (*colormodel.Color).Whiten,
	"blacken":    (*colormodel.Color).Blacken,
	"fade":       (*colormodel.Color).Fade,
	"opaquer":    (*colormodel.Color).Opaquer,
}

// AdjustOperations lists every color_adjust operation name.
var AdjustOperations = []string{
	"red", "green", "blue", "alpha", "reddish", "greenish", "bluish",
	"lighten", "darken", "rotate", "saturate", "desaturate", "whiten", "blacken",
	"fade", "opaquer", "invert", "grayscale", "mix",
}

func (s *Server) applyOperation(c *colormodel.Color, op adjustOperation) error {
	name := strings.ToLower(strings.TrimSpace(op.Op))
	switch name {
	case "invert":
		c.Invert()
		return nil
	case "grayscale":
		c.Grayscale()
		return nil
	case "mix":
		other, _, err := s.parseColor(op.Color, "")
		if err != nil {
			return fmt.Errorf("mix: %w", err)
		}
		weight := 0.5
		if op.Value != nil {
			weight = *op.Value
		}
		c.Mix(other, weight)
		return nil
	}

	fn, ok := adjustments[name]
	if !ok {
		return fmt.Errorf("unknown operation: %q", op.Op)
	}
	if op.Value == nil {
		return fmt.Errorf("operation %s requires a value", name)
	}
	fn(c, *op.Value)
	return nil
}

func (s *Server) handleColorAdjust(args json.RawMessage) (interface{}, error) {
	var a colorAdjustArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, _, err := s.parseColor(a.Color, a.Format)
	if err != nil {
		return nil, err
	}
	for i, op := range a.Operations {
		if err := s.applyOperation(c, op); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return describeColor(c)
}

type colorCompareArgs struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
}

// ColorCompareResult is the output of color_compare.
type ColorCompareResult struct {
	Hex1 string `json:"hex1"`
	Hex2 string `json:"hex2"`
	imaging.Difference
}

func (s *Server) handleColorCompare(args json.RawMessage) (interface{}, error) {
	var a colorCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c1, _, err := s.parseColor(a.Color1, "")
	if err != nil {
		return nil, fmt.Errorf("color1: %w", err)
	}
	c2, _, err := s.parseColor(a.Color2, "")
	if err != nil {
		return nil, fmt.Errorf("color2: %w", err)
	}
	d, err := imaging.ColorDifference(c1, c2)
	if err != nil {
		return nil, err
	}
	return &ColorCompareResult{Hex1: c1.Hex(), Hex2: c2.Hex(), Difference: d}, nil
}

type colorSwatchArgs struct {
	Colors []string `json:"colors"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 256
	}
	if a.Height == 0 {
		a.Height = 64
	}
	colors := make([]*colormodel.Color, len(a.Colors))
	for i, text := range a.Colors {
		c, _, err := s.parseColor(text, "")
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		colors[i] = c
	}
	return imaging.Swatch(colors, a.Width, a.Height)
}

type colorAdaptArgs struct {
	L            float64 `json:"l"`
	A            float64 `json:"a"`
	B            float64 `json:"b"`
	RefWhite     string  `json:"ref_white"`
	WorkingSpace string  `json:"working_space"`
	Gamma        string  `json:"gamma"`
	Method       string  `json:"method"`
}

// ColorAdaptResult is the output of color_adapt.
type ColorAdaptResult struct {
	// RGB is companded and unclipped, nominally 0-1.
	RGB          [3]float64 `json:"rgb"`
	RGB8         [3]uint8   `json:"rgb8"`
	Hex          string     `json:"hex"`
	InGamut      bool       `json:"in_gamut"`
	WorkingSpace string     `json:"working_space"`
	RefWhite     string     `json:"ref_white"`
}

func (s *Server) handleColorAdapt(args json.RawMessage) (interface{}, error) {
	a := colorAdaptArgs{RefWhite: "D50", WorkingSpace: "sRGB", Gamma: "native", Method: "bradford"}
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var cfg colormodel.AdaptationConfig
	var err error
	if cfg.RefWhite, err = colormodel.ParseIlluminant(a.RefWhite); err != nil {
		return nil, err
	}
	if cfg.Working, err = colormodel.ParseRGBSpace(a.WorkingSpace); err != nil {
		return nil, err
	}
	if cfg.Gamma, err = colormodel.ParseGammaMode(a.Gamma); err != nil {
		return nil, err
	}
	if cfg.Method, err = colormodel.ParseAdaptationMethod(a.Method); err != nil {
		return nil, err
	}

	rgb := colormodel.LabToRGBAdapted([3]float64{a.L, a.A, a.B}, cfg)
	for _, v := range rgb {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("lab(%g %g %g) has no finite RGB value", a.L, a.A, a.B)
		}
	}
	res := &ColorAdaptResult{InGamut: true, WorkingSpace: cfg.Working.Name, RefWhite: cfg.RefWhite.Name}
	for i, v := range rgb {
		res.RGB[i] = round4(v)
		if v < -1e-4 || v > 1+1e-4 {
			res.InGamut = false
		}
		res.RGB8[i] = uint8(math.Round(colormodel.Clamp(v*255, 0, 255)))
	}
	res.Hex = fmt.Sprintf("#%02x%02x%02x", res.RGB8[0], res.RGB8[1], res.RGB8[2])
	return res, nil
}

// === Image Color Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y, s.table)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points, s.table)
}

type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r regionArgs) region() imaging.Region {
	return imaging.Region{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

type imageDominantColorsArgs struct {
	Path   string      `json:"path"`
	Count  int         `json:"count"`
	Region *regionArgs `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		r := a.Region.region()
		region = &r
	}
	return imaging.DominantColors(img, a.Count, region, s.table)
}

type imageCompareRegionsArgs struct {
	Path    string     `json:"path"`
	Region1 regionArgs `json:"region1"`
	Region2 regionArgs `json:"region2"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, a.Region1.region(), a.Region2.region(), s.table)
}

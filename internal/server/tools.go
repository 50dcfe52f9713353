package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func colorProp() map[string]interface{} {
	return stringProp("Color string: #hex, rgb(), hsl(), hwb(), lab(), lch(), xyz(), cmyk(), oklab(), oklch(), color(srgb ...) or a color name")
}

func pathProp() map[string]interface{} {
	return stringProp("Absolute path to the image file")
}

func regionProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Model
		{
			Name:        "color_parse",
			Description: "Parse a color string and return its model, channel values, alpha and the hex, rgb and hsl renderings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":  colorProp(),
					"format": stringProp("Optional explicit format (hex, rgb, hsl, lab, lch, hwb, xyz, cmyk, oklab, oklch, color). Skips detection; the string may then be a bare channel list."),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a color to another model and render it in that model's CSS-like notation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":  colorProp(),
					"format": stringProp("Optional explicit input format"),
					"to":     stringProp("Target format: hex, hexa, rgb, rgba, hsl, hsla, hwb, lab, lch, xyz, cmyk, oklab, oklch or color"),
				},
				"required": []string{"color", "to"},
			},
		},
		{
			Name:        "color_format",
			Description: "Render a color through a template. Placeholders are [index:UNIT] or [A:UNIT] with UNIT one of INT8, HEX, NORMALIZED, FLOAT16, PERCENT, DEGREE, NUMBER.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":    colorProp(),
					"format":   stringProp("Optional explicit input format"),
					"template": stringProp("Template text, e.g. \"[1:INT8] [2:INT8] [3:INT8]\""),
					"model":    stringProp("Optional model to convert to before formatting; channel indexes refer to this model"),
				},
				"required": []string{"color", "template"},
			},
		},
		{
			Name:        "color_closest",
			Description: "Find the nearest named color by Euclidean RGB distance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":  colorProp(),
					"format": stringProp("Optional explicit input format"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_adjust",
			Description: "Apply a sequence of adjustments (lighten, darken, rotate, saturate, mix, ...) to a color and return the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":  colorProp(),
					"format": stringProp("Optional explicit input format"),
					"operations": map[string]interface{}{
						"type":        "array",
						"description": "Operations applied in order",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"op": map[string]interface{}{
									"type": "string",
									"enum": AdjustOperations,
								},
								"value": map[string]interface{}{
									"type":        "number",
									"description": "Operation amount. Ratios are 0-1, rotate is degrees, channel setters take channel units. For mix it is the weight of the other color (default 0.5).",
								},
								"color": stringProp("Other color, used by mix"),
							},
							"required": []string{"op"},
						},
					},
				},
				"required": []string{"color", "operations"},
			},
		},
		{
			Name:        "color_compare",
			Description: "Measure the difference between two colors: RGB distance, CIE76 and CIEDE2000 delta E.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": colorProp(),
					"color2": colorProp(),
				},
				"required": []string{"color1", "color2"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render colors as vertical stripes into a base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       colorProp(),
						"description": "Colors, left to right",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels (default 256)",
						"default":     256,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels (default 64)",
						"default":     64,
					},
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "color_adapt",
			Description: "Convert a LAB color under a reference white into an RGB working space with chromatic adaptation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"l":             map[string]interface{}{"type": "number", "description": "Lightness (0-100)"},
					"a":             map[string]interface{}{"type": "number", "description": "a* axis"},
					"b":             map[string]interface{}{"type": "number", "description": "b* axis"},
					"ref_white":     stringProp("Reference white of the LAB value: A, B, C, D50, D55, D65, D75, E, F2, F7, F11 (default D50)"),
					"working_space": stringProp("RGB working space, e.g. sRGB, Adobe, ProPhoto, Wide Gamut (default sRGB)"),
					"gamma":         stringProp("Companding: native, 1.0, 1.8, 2.2, sRGB or L* (default native)"),
					"method":        stringProp("Adaptation method: bradford, von kries, xyz scaling or none (default bradford)"),
				},
				"required": []string{"l", "a", "b"},
			},
		},

		// Image Colors
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and color depth. The image is cached for later calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel, with hex, RGB, HSL, LAB and the nearest named color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp(),
					"x":    map[string]interface{}{"type": "integer", "description": "X coordinate"},
					"y":    map[string]interface{}{"type": "integer", "description": "Y coordinate"},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at several labeled points in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp(),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most frequent colors of an image or a region, each with its coverage and nearest named color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return (default 5)",
						"default":     5,
					},
					"region": regionProp("Optional region to analyze"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_compare_regions",
			Description: "Compare two regions of an image: pixel similarity, average colors and their color difference.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProp(),
					"region1": regionProp("First region"),
					"region2": regionProp("Second region"),
				},
				"required": []string{"path", "region1", "region2"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

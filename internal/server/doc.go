// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colormodel and
// imaging packages through the MCP protocol, so MCP-compatible clients can parse,
// convert and compare colors and read colors out of images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Model:
//   - color_parse: Parse any supported notation or a color name
//   - color_convert: Convert to another model and render it
//   - color_format: Render through a [index:UNIT] template
//   - color_closest: Nearest named color
//   - color_adjust: Apply lighten, rotate, mix and the other modifiers in order
//   - color_compare: RGB distance and delta E between two colors
//   - color_swatch: Render colors into a PNG strip
//   - color_adapt: LAB to an RGB working space with chromatic adaptation
//
// Image Colors:
//   - image_load: Load image and get metadata
//   - image_sample_color: Get color at pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract color palette
//   - image_compare_regions: Compare two regions
//
// # Named Colors
//
// Color names resolve against the server's table, the CSS/SVG names unless a
// different table is passed to New. Strings that match no notation are looked
// up in that table before the parse error is reported.
//
// # Image Caching
//
// Images are cached by path and reused across tool calls. The cache persists
// for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(colormodel.DefaultTable())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

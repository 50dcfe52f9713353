// Package imaging connects images to the color model: it samples pixels,
// extracts palettes, compares regions and renders color swatches.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive and (x2,y2) is exclusive
//
// # Color Representation
//
// Sampled colors are described by colormodel renderings:
//   - Hex: "#rrggbb" (alpha reported separately)
//   - RGB: 8-bit components
//   - HSL and Lab: CSS-style strings
//   - Name: the closest entry of the named-color table in use
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless
// and may be called concurrently on images that are not being mutated.
package imaging

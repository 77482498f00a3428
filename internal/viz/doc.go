// Package viz draws the portfolio's terminal surfaces.
//
//   - [Canvas]: braille raster (2x4 dots per cell) implementing field.Surface
//   - [Theme]: named colour palettes, cycled with the t key
//   - [Styles]: lipgloss styles derived from a theme
//
// Field coordinates are divided by [Canvas.UnitsPerDot] to land on dots, so
// a 200 column terminal is 1600 field units wide at the default scale.
package viz

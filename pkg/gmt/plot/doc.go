// Package plot wraps the GMT plotting modules behind a Figure type.
//
// Options are keyed by the single-letter GMT flag or by a long alias:
//
//	fig := plot.NewFigure(lib, "")
//	err := fig.Basemap(ctx, plot.Options{
//		"region":     []float64{10, 70, -3, 8},
//		"projection": "X4i/3i",
//		"frame":      "a",
//	})
//
// produces the psbasemap command line "-Ba -JX4i/3i -R10/70/-3/8".
package plot

// Package shapes loads shape documents and feeds them to a gfx.MeshBuilder.
//
// A document lists shapes in drawing order. It can be written in YAML:
//
//	tolerance: 0.05
//	shapes:
//	  - kind: rect
//	    rect: [0, 0, 100, 50]
//	    color: cornflowerblue
//	  - kind: circle
//	    mode: stroke
//	    width: 2
//	    center: [50, 25]
//	    radius: 20
//	    color: "#ff000080"
//
// or the equivalent TOML, using [[shapes]] tables. Colors are SVG color
// names or hex strings as accepted by gfx.ParseColor.
package shapes

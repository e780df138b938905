// Package arctask is the ingest/emit boundary: wire-format tasks built
// from plain [][]int grids (JSON-friendly, encoding/json compatible),
// converted to and from grid.Grid at the edge so the rest of the module
// never has to think about wire representation.
package arctask

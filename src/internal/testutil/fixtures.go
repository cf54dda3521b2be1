// Package testutil provides shared shape fixtures for tests
package testutil

// Sample is a small shape text in the format exported by animation tools:
// a filled square, a stroked curve and a two-color circle.
const Sample = `square f #ff0000 mt 0 0 lt 100 0 lt 100 100 lt 0 100 cp
curve s #0000FF ss 2 mt 0 0 bt 10 -20 30 20 40 0 es
circle f #00ff00 dc 50 50 25 ef f #123456 dc 50 50 10 ef
`

// SampleKeys are the identifiers defined in Sample, sorted.
var SampleKeys = []string{"circle", "curve", "square"}

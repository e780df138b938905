// Package candidate defines the shared output type written by package
// compose and read by package score: a sequence of grids (one per
// training output slot plus the test answer) together with the
// bookkeeping needed to judge how much work went into producing it.
package candidate

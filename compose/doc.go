// Package compose assembles pieces (package piece) into candidate
// output sequences: one grid per DAG slot, training outputs first, the
// test answer last.
//
// Every pixel across every slot lives in one flat bit-addressable
// space. Composition claims pixels greedily: at each step it picks the
// admissible piece and apply mode that claims the most still-needed
// pixels, applies it, and repeats until no admissible piece makes
// progress. An outer driver runs this core loop over a deterministic
// set of (depth threshold, focus subset, care subset) combinations,
// collecting every distinct result, then runs a black-fill pass over
// each to offer a fully-claimed alternative.
package compose

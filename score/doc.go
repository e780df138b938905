// Package score ranks compose's candidates by how well they reproduce
// the training outputs, penalised by how much composition work they
// required, and trims the result to the public top-k answers.
package score

// Package stencil holds the finite difference operators used by the field
// solver and the tables of weights that parameterize them.
//
// Every algorithm is an empty struct implementing CartesianAlgorithm or
// CylindricalAlgorithm. Kernels take the algorithm as a type parameter, so
// the family is fixed once per call and never branched on per cell.
//
// A table of length N reads N points on each side of the output cell.
// Ghost cells for that support radius are the caller's responsibility.
package stencil

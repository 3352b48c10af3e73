// Package array provides dense N-dimensional arrays of float64 values,
// stored row-major in a flat backing slice for performance and cache
// friendliness. It is the value carrier for the diff evaluator: grids of
// sampled function values go in, grids of derivative values come out.
//
// A Dense is immutable in shape after construction; elements are mutable
// through Set. Elementwise kernels (Add, Sub, Scale, Hadamard) follow a
// strict validate → allocate → single-flat-loop discipline and always
// return freshly allocated results, never mutating their operands.
package array

// Package tsplib encodes cost matrices into the TSPLIB explicit-matrix
// problem format and decodes the tour files an external solver writes back.
//
// Only the subset of TSPLIB relevant to the tomography pipeline is
// implemented: symmetric TSP instances with EDGE_WEIGHT_TYPE EXPLICIT and
// EDGE_WEIGHT_FORMAT FULL_MATRIX. Edge weights in a problem file must be
// integers, so fractional wave-plate distances are scaled by a fixed factor
// before writing; with the source angle tables every distance is a multiple
// of 22.5°, so the default factor of 2 makes every entry exactly integral.
// Scaling is monotone and leaves the optimal tour unchanged; only the
// solver-reported objective is multiplied, and it is never read back.
//
// A solution file is a dimension line followed by the tour as
// whitespace-separated 0-based indices, wrapped across lines at the
// solver's discretion.
package tsplib

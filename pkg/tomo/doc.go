// Package tomo models wave-plate measurement settings for quantum-state
// tomography and the rotation cost of switching between them.
//
// A polarization projection is selected by rotating a half-wave plate (HWP)
// and a quarter-wave plate (QWP); one measurement configuration for an
// n-qubit system is therefore a tuple of 2n angles. Measuring a full state
// requires visiting every element of the configuration space (the n-fold
// Cartesian product of the per-qubit projection set), and the experiment
// duration is dominated by the cumulative wave-plate rotation between
// consecutive settings.
//
// This package provides the three computational pieces of that picture:
//
//   - the configuration space builder (BaseSettings, SchemeSettings, Expand),
//   - the pairwise rotation cost matrix (BuildCostMatrix), using the
//     max-absolute-coordinate-difference metric: all plates rotate
//     simultaneously, so a transition takes as long as its largest single
//     plate rotation,
//   - the cycle evaluator (CycleLength, Speedup, Reduction), which scores a
//     measurement ordering as a closed tour through the configuration space.
//
// Finding the cheapest ordering is a Traveling Salesman Problem over the
// cost matrix; solving it is delegated to an external solver (see
// pkg/tsplib and pkg/solver).
package tomo

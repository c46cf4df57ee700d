// Package pkg provides the core libraries for tomotsp measurement ordering.
//
// # Overview
//
// Tomotsp shortens quantum state tomography runs by reordering wave plate
// configurations so the total rotation distance is minimal. The pkg
// directory is organized into five main areas:
//
//  1. [tomo] - Domain logic (configuration spaces, cost matrices, cycle metrics)
//  2. [tsplib] - TSPLIB problem serialization and tour parsing
//  3. [solver] - External exact solver invocation
//  4. [cache] - Tour caching (file, Redis, Mongo backends)
//  5. [pipeline] - Orchestration (configure → cost → solve → evaluate)
//
// # Architecture
//
// The typical data flow through tomotsp:
//
//	Scheme + Qubit Count
//	         ↓
//	tomo (configuration space, cost matrix)
//	         ↓
//	tsplib (problem file)
//	         ↓
//	solver (external exact solve)
//	         ↓
//	tsplib (tour file)
//	         ↓
//	tomo (cycle metrics, speedup)
//
// The pipeline package ties the stages together and consults the cache
// before each solve. Supporting packages: errors (coded errors), buildinfo
// (version stamping), observability (optional instrumentation hooks).
package pkg

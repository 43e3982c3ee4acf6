// Package tsplab is a laboratory for comparing metaheuristic TSP solvers on
// fixed symmetric distance matrices.
//
// The repository is organized as:
//
//   - tsp      — the optimization core: distance oracle, tours, moves, and the
//     engines (nearest neighbor, iterated hill climbing, simulated annealing,
//     tabu search, genetic search, memetic search).
//   - dataset  — loading of semicolon-delimited distance-matrix CSV files and
//     the registry of the benchmark instances (48/76/127 cities).
//   - record   — persistence of per-run results as timestamped JSON documents
//     plus summary statistics over repeated trials.
//   - bench    — YAML-described experiments executed as independent seeded
//     trials on a worker pool.
//   - cmd/tsplab — the command-line driver tying the above together.
//
// All engines are deterministic under a fixed seed; repeated trials derive
// independent seeds from a base seed so runs are reproducible yet mutually
// independent.
package tsplab

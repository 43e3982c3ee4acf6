// Package tsp implements metaheuristic solvers for the symmetric Traveling
// Salesman Problem on a fixed distance matrix.
//
// Available engines (see Algorithm):
//
//   - NearestNeighbor — deterministic greedy construction, lowest-index
//     tie-break. O(n²).
//   - IteratedHillClimb — multistart steepest-descent local search over a
//     configurable move neighborhood.
//   - Anneal — simulated annealing with geometric or linear cooling and
//     Metropolis acceptance exp(−Δ/T).
//   - TabuSearch — best-admissible search with a bounded FIFO tabu list and
//     an aspiration override on new global bests.
//   - Evolve — genetic search: tournament/roulette/rank selection, OX/PMX/CX
//     crossover, generational/elitist/steady-state replacement.
//   - Memetic — genetic search with a bounded 2-opt refinement applied to
//     every offspring.
//
// All engines operate on a Tour: an open permutation of the city indices
// 0..n−1, implicitly closed (the last city connects back to the first).
// Candidate moves (swap, insertion, segment reversal) are evaluated through
// incremental length deltas touching only the edges a move rewires, never by
// recomputing the whole tour.
//
// Determinism: every stochastic engine takes an explicit seed; the same seed
// yields the identical tour, length, and iteration count. There is no global
// or time-based randomness anywhere in the package.
package tsp

// Package bench runs repeated-trial experiments over the tsp engines.
//
// An Experiment is described in YAML: a list of algorithm configurations, a
// trial count, and a base seed. Every trial derives its own seed from the
// base seed and its (algorithm, run) coordinates, so an experiment is exactly
// reproducible from one number while its trials remain statistically
// independent. Trials are independent read-only computations over a shared
// distance matrix and execute on a bounded worker pool.
package bench

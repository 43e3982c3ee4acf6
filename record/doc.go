// Package record persists algorithm run results as JSON documents and
// aggregates them into summary statistics.
//
// Each completed run becomes one RunRecord, serialized to an indented JSON
// file named {algorithm}_{N}cities_{timestamp}.json inside the monitor's
// results directory. Records carry a UUID so runs stay distinguishable after
// files are copied or merged across machines.
package record

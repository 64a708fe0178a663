// Package plan runs a check file against analyzed packages and produces a
// Plan: the per-member conversion outcome of every enum pair plus
// diagnostics.
//
// Resolution pipeline:
//  1. Analyze packages → enum graph
//  2. Load YAML check file → validate
//  3. For each pair:
//     - Look up both enum types in the graph
//     - Convert every source member with the pair's mode
//     - Emit diagnostics (failed members with suggestions, value matches)
package plan

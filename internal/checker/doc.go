// Package checker implements the audit rule engine: the individual
// checkers, the aggregation engine that runs them, and the scoring step.
//
// # Purpose
//
// Each checker inspects the full normalized node list of one page and
// reports zero or more issues in its home category. The engine runs the
// registered checkers in a fixed order, folds their issues into a
// per-category map, and computes per-category and weighted overall
// scores.
//
// # Design Philosophy
//
// Checkers follow a modular analyzer pattern: one type per rule set,
// all implementing the same small interface. This design was chosen
// because:
//  1. Each rule set has its own thresholds and pattern tables
//  2. The engine can filter categories without touching rule code
//  3. A fault in one checker never blanks the whole report
//  4. Individual rule sets are trivially testable
//
// Checkers are pure with respect to their inputs: they share no mutable
// state, perform no I/O, and read only the node list. The only impurity
// in a run is the optional enrichment step, which the engine invokes
// through an injected interface.
//
// # Heuristics
//
// Every rule here is a string/attribute pattern match over an already
// extracted node list. There is no real link reachability checking, no
// OCR, and no contrast-ratio computation; the heuristics are isolated
// behind named predicate functions so a real structural check can
// replace any of them later without touching the rules.
//
// # Usage
//
//	engine := checker.NewEngine(checker.WithLogger(logger))
//	result, err := engine.AnalyzeNodes(ctx, nodes, nil)
package checker

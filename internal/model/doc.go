// Package model defines the core data structures shared across Framelytics:
// nodes, issues, categories, severities, and analysis results.
//
// The types in this package are plain data with small helper methods.
// They carry no business logic; the rules that produce issues live in
// the checker package, and presentation lives in the report package.
//
// Lifecycle summary:
//   - Node lists are built once per audit run (by the extract package or a
//     host bridge) and are immutable afterwards.
//   - Issues are created by checkers, optionally enriched once in place
//     with position/preview data, and never mutated after aggregation.
//   - AnalysisResult is produced atomically by one engine call and is
//     immutable thereafter.
package model

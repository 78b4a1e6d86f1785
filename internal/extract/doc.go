// Package extract converts raw HTML markup into the normalized node
// list the analysis engine consumes.
//
// Extraction is lossy on purpose: only the elements and attributes the
// checkers inspect are carried over (head metadata, headings, text
// blocks, images, links, form controls, scripts, landmarks). Nodes are
// emitted in document order with deterministic IDs, so repeated
// extraction of the same markup yields an identical list.
package extract

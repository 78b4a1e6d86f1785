// Package enrich annotates analysis issues with host-provided visual
// context: bounding boxes and preview images for the nodes an issue
// references.
//
// The host is an injected capability behind the Host interface. Every
// host call runs under a bounded timeout and is strictly best-effort: a
// failed or slow call leaves the issue without position or visual data
// and never fails the analysis. The only error enrichment surfaces is
// context cancellation.
package enrich

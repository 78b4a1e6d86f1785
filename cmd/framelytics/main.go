// Package main provides the entry point for the Framelytics CLI.
//
// Framelytics audits page markup for SEO, accessibility, and link
// integrity problems, and scores the result per category and overall.
//
// Usage:
//
//	framelytics audit <file>...
//	framelytics audit -
//
// See --help for all available options.
package main

// main is the entry point for Framelytics.
func main() {
	Execute()
}

// Package slug builds ASCII identifiers from free text, for file names and URLs.
//
//	slug.Make("Deep Research Report: Café AI")
//	// "deep-research-report-cafe-ai"
//
//	slug.Make("Quarterly Report", slug.Separator("_"), slug.MaxLength(10))
//	// "quarterly"
package slug

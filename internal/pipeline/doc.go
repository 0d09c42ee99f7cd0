// Package pipeline runs one preparation pass over an input directory:
// pick the first six images, assign roles, render the contact sheet,
// write normalized copies and the summary manifest.
//
// Files:
//   - discover.go: ListImages and the insufficient-input error
//   - runner.go: Run, artifact paths, the completion report
//   - stats.go: RunStats and Artifacts
package pipeline

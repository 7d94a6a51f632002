// Package formatter renders statistics reports.
//
// This package is organized into:
// - text.go: console output
// - json.go: JSON serialization
// - xml.go: XML serialization
// - pdf.go: one-page PDF summary
// - render.go: format dispatch
package formatter

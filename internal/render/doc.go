// Package render groups normalized events by month and produces the HTML
// fragments embedded in the published artifact.
package render

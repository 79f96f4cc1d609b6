// Package cli implements the command-line interface for sympla-events.
//
// The cli package provides the Cobra-based CLI with a single-run root command
// and a cron-scheduled watch subcommand. It coordinates config, the Sympla
// client, the pipeline, storage and the calendar exporter, and formats the
// run summary as text or JSON.
package cli

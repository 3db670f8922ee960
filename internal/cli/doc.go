// Package cli implements the vitals command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a workflow function for the actual work:
//
//	vitals              - Start the metrics dashboard (root command)
//	vitals init         - Create a .vitals.yaml config
//	vitals version      - Print version information
//	vitals completion   - Generate shell completion scripts
//
// Global flags (--config, --interval, --no-bridge) are defined on the
// root command. The dashboard workflow wires together the metric
// refresher, the element registry, the Bubble Tea program, and the
// host bridge server.
package cli

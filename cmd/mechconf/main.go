// mechconf parses and validates chemical mechanism configurations.
//
// A mechanism configuration declares species, phases and reactions in YAML
// or JSON. mechconf checks every file against the schema of each reaction
// variant and cross-checks all species and phase references, reporting
// every error with its file, line and column.
//
// Usage:
//
//	# Validate mechanism files
//	mechconf lint mechanisms/full.yaml mechanisms/cb05.json
//
//	# Validate every mechanism under a directory, JSON output for CI
//	mechconf lint --dir mechanisms/ --format json
//
//	# Summarize one mechanism
//	mechconf inspect mechanisms/full.yaml
//
//	# Keep a directory parsed and export Prometheus metrics
//	mechconf watch --dir mechanisms/ --metrics-addr 127.0.0.1:9090
//
//	# Show version information
//	mechconf version
package main

func main() {
	Execute()
}

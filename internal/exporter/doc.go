// Package exporter serializes aggregation results. JSON is the canonical
// output format the pipeline captures from stdout; a CSV rendition is
// available for consumers that stay in the delimited-text world.
package exporter

// Package dataprocessing implements the aggregation core: parsing a
// delimited source file into records, coercing the numeric column, dropping
// rows that fail coercion, and summing values per category.
//
// The package is deliberately forgiving about cell-level dirt and strict
// about structure. A cell that is not a number costs only its own row; a
// file that cannot be parsed aborts the run, because a partial aggregation
// over a structurally broken file would be meaningless.
//
// Inputs whose header is missing the expected columns are handled by an
// explicit FallbackPolicy rather than rejected, so demonstration datasets
// without a proper schema still produce output. See FallbackPolicy.
package dataprocessing

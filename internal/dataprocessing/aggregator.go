package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "aggcli/internal/errors"
)

// FallbackPolicy governs synthetic defaults for datasets whose header is
// missing the expected columns. When enabled, a missing Value column is
// synthesized as row index times ValueStep (0-based, file order), and a
// missing Category column groups every row under PlaceholderCategory. When
// disabled, a missing column is a malformed-input failure.
type FallbackPolicy struct {
	Enabled             bool
	PlaceholderCategory string
	ValueStep           float64
}

// DefaultFallbackPolicy returns the policy used when none is configured.
func DefaultFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{
		Enabled:             true,
		PlaceholderCategory: "Uncategorized",
		ValueStep:           10,
	}
}

// Aggregator cleans a dataset and sums its values per category.
type Aggregator struct {
	logger *slog.Logger
	policy FallbackPolicy
}

// NewAggregator creates an Aggregator with the given logger and fallback
// policy. A nil logger falls back to slog.Default.
func NewAggregator(logger *slog.Logger, policy FallbackPolicy) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger, policy: policy}
}

// Run parses the file at path and aggregates it. This is the single entry
// point the CLI uses.
func (a *Aggregator) Run(ctx context.Context, path string) (*AggregationResult, error) {
	ds, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return a.Aggregate(ctx, ds)
}

// Aggregate cleans ds and returns per-category sums. Rows whose value fails
// numeric coercion are dropped silently; the drop count is recorded on the
// result and logged at debug level. An empty dataset, or one where every
// row is dropped, yields an empty (non-nil) total sequence. Categories
// appear in the output in first-seen order of the filtered rows.
func (a *Aggregator) Aggregate(ctx context.Context, ds *Dataset) (*AggregationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Internal(err)
	}

	cleaned, dropped, err := a.clean(ds)
	if err != nil {
		return nil, err
	}

	result := &AggregationResult{
		Totals:  []CategoryTotal{},
		Rows:    len(ds.Records),
		Kept:    len(cleaned),
		Dropped: dropped,
	}

	a.logger.Debug("Cleaned dataset",
		slog.String("path", ds.Path),
		slog.Int("rows", result.Rows),
		slog.Int("kept", result.Kept),
		slog.Int("dropped", result.Dropped))

	if len(cleaned) == 0 {
		return result, nil
	}

	// Sum per category in filtered-row order so float accumulation is
	// reproducible across runs on identical input.
	sums := make(map[string]float64, len(cleaned))
	var order []string
	for _, rec := range cleaned {
		if _, seen := sums[rec.Category]; !seen {
			order = append(order, rec.Category)
		}
		sums[rec.Category] += rec.Value
	}

	for _, category := range order {
		result.Totals = append(result.Totals, CategoryTotal{
			Category: category,
			Value:    sums[category],
		})
	}

	a.logger.Info("Aggregation complete",
		slog.String("path", ds.Path),
		slog.Int("categories", len(result.Totals)),
		slog.Int("dropped_rows", result.Dropped))

	return result, nil
}

// clean reduces ds to CleanedRecords, applying the fallback policy for
// missing columns and dropping rows whose value fails coercion.
func (a *Aggregator) clean(ds *Dataset) ([]CleanedRecord, int, error) {
	hasValue := ds.HasColumn(ColumnValue)
	hasCategory := ds.HasColumn(ColumnCategory)

	if !a.policy.Enabled {
		if !hasValue {
			return nil, 0, apperrors.MalformedInput(fmt.Errorf("missing required column %q", ColumnValue))
		}
		if !hasCategory {
			return nil, 0, apperrors.MalformedInput(fmt.Errorf("missing required column %q", ColumnCategory))
		}
	}

	if !hasValue {
		a.logger.Warn("Value column missing, synthesizing values",
			slog.String("path", ds.Path),
			slog.Float64("value_step", a.policy.ValueStep))
	}
	if !hasCategory {
		a.logger.Warn("Category column missing, using placeholder",
			slog.String("path", ds.Path),
			slog.String("placeholder", a.policy.PlaceholderCategory))
	}

	var cleaned []CleanedRecord
	dropped := 0
	for i, rec := range ds.Records {
		var value float64
		if hasValue {
			v, ok := CoerceValue(rec[ColumnValue])
			if !ok {
				dropped++
				a.logger.Debug("Dropped row with non-numeric value",
					slog.Int("row", i),
					slog.String("raw_value", rec[ColumnValue]))
				continue
			}
			value = v
		} else {
			value = float64(i) * a.policy.ValueStep
		}

		category := a.policy.PlaceholderCategory
		if hasCategory {
			// Exact match grouping: no trimming, case-sensitive.
			category = rec[ColumnCategory]
		}

		cleaned = append(cleaned, CleanedRecord{Category: category, Value: value})
	}

	return cleaned, dropped, nil
}

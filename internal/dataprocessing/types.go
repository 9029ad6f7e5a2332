package dataprocessing

// Column names the source dataset is expected to carry.
const (
	ColumnCategory = "Category"
	ColumnValue    = "Value"
)

// Record is one row of the source dataset, keyed by column name. Values are
// raw cell text as read from the file.
type Record map[string]string

// Dataset is an ordered sequence of Records sharing a single header. Record
// order is file order; it carries no meaning beyond keeping aggregation
// deterministic.
type Dataset struct {
	Path    string
	Header  []string
	Records []Record
}

// HasColumn reports whether the dataset header names the given column.
func (d *Dataset) HasColumn(name string) bool {
	for _, h := range d.Header {
		if h == name {
			return true
		}
	}
	return false
}

// CleanedRecord is a Record reduced to the two fields of interest, with the
// value coerced to a number. Only rows that survive coercion become
// CleanedRecords.
type CleanedRecord struct {
	Category string
	Value    float64
}

// CategoryTotal is one element of the aggregation output.
type CategoryTotal struct {
	Category string  `json:"Category"`
	Value    float64 `json:"Value"`
}

// AggregationResult holds the per-category totals plus row accounting, so
// callers can observe how many rows the coercion filter dropped.
type AggregationResult struct {
	Totals  []CategoryTotal
	Rows    int
	Kept    int
	Dropped int
}

package cpumark

// Placeholder values used when rendering records.
const (
	UnknownValue = "Unknown"
	MissingValue = "-"
)

// DetailRows returns one {key, value} row per spec of rec in order.
// Empty values are shown as UnknownValue.
func DetailRows(rec *DetailRecord) [][]string {
	rows := make([][]string, 0, len(rec.Details))
	for _, d := range rec.Details {
		value := d.Value
		if value == "" {
			value = UnknownValue
		}
		rows = append(rows, []string{d.Key, value})
	}
	return rows
}

// ComparisonKeys returns the union of spec keys across records, in the
// order each key is first seen.
func ComparisonKeys(records []*DetailRecord) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, rec := range records {
		for _, key := range rec.Details.Keys() {
			if seen[key] {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// ComparisonRows returns one row per comparison key: the key followed by
// each record's value. Missing or empty values are shown as MissingValue.
func ComparisonRows(records []*DetailRecord) [][]string {
	keys := ComparisonKeys(records)
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		row := make([]string, 0, len(records)+1)
		row = append(row, key)
		for _, rec := range records {
			value, _ := rec.Details.Get(key)
			if value == "" {
				value = MissingValue
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return rows
}

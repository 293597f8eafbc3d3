package catalog

// Dataset is the working set of records for a session.
// The zero value is an empty dataset.
type Dataset struct {
	records []GameRecord
}

// NewDataset copies records into a new Dataset.
func NewDataset(records []GameRecord) Dataset {
	if len(records) == 0 {
		return Dataset{}
	}
	owned := make([]GameRecord, len(records))
	copy(owned, records)
	return Dataset{records: owned}
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.records)
}

// Empty reports whether the dataset holds no records.
func (d Dataset) Empty() bool {
	return len(d.records) == 0
}

// At returns the i-th record in dataset order.
func (d Dataset) At(i int) GameRecord {
	return d.records[i]
}

// Records returns a copy of all records in dataset order.
func (d Dataset) Records() []GameRecord {
	out := make([]GameRecord, len(d.records))
	copy(out, d.records)
	return out
}

package varimport

import "github.com/google/uuid"

// Failure records a key rejected during import together with the reason.
type Failure struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// Report is the structured result of an import operation, partitioning keys
// by outcome. Sequences preserve batch input order within each category.
// A report is immutable once returned; it is owned by the caller and never
// persisted by the importer.
type Report struct {
	// ID identifies the import operation for log and trace correlation.
	ID uuid.UUID `json:"id"`

	Created     []string  `json:"created"`
	Overwritten []string  `json:"overwritten"`
	Skipped     []string  `json:"skipped"`
	Failed      []Failure `json:"failed"`
}

// Total returns the number of entries accounted for in the report.
func (r *Report) Total() int {
	return len(r.Created) + len(r.Overwritten) + len(r.Skipped) + len(r.Failed)
}

// Clean reports whether every entry in the batch was imported without
// being skipped or rejected.
func (r *Report) Clean() bool {
	return len(r.Skipped) == 0 && len(r.Failed) == 0
}

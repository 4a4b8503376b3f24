package survey

// DerivedRecord is a Record with the numeric engagement column appended.
// Present distinguishes a real value from the absent sentinel; the zero
// value of EngagementNumeric is never meaningful on its own.
type DerivedRecord struct {
	Record
	EngagementNumeric int64
	Present           bool
}

// DeriveNumeric appends the numeric engagement column to every record. The
// input slice is not modified.
func DeriveNumeric(records []Record) []DerivedRecord {
	derived := make([]DerivedRecord, 0, len(records))
	for _, r := range records {
		n, ok := r.EngagementLevel.Numeric()
		derived = append(derived, DerivedRecord{
			Record:            r,
			EngagementNumeric: n,
			Present:           ok,
		})
	}
	return derived
}

package survey

// EngagementLevel is the categorical survey response. Values outside the
// three known levels are kept verbatim and treated as absent when derived.
type EngagementLevel string

const (
	EngagementLow    EngagementLevel = "Low"
	EngagementMedium EngagementLevel = "Medium"
	EngagementHigh   EngagementLevel = "High"
)

// Numeric maps the categorical level onto the 1..3 scale. The mapping is
// total: every input yields exactly one result, with ok=false marking the
// absent sentinel for unrecognized values.
func (l EngagementLevel) Numeric() (int64, bool) {
	switch l {
	case EngagementLow:
		return 1, true
	case EngagementMedium:
		return 2, true
	case EngagementHigh:
		return 3, true
	default:
		return 0, false
	}
}

// Record is one employee survey response, matching the input file schema
// column for column.
type Record struct {
	EmployeeID          int64
	Department          string
	JobTitle            string
	SatisfactionRating  int
	EngagementLevel     EngagementLevel
	ReportsConcerns     bool
	ProvidedSuggestions bool
}

// Dataset is an immutable, fully loaded input file. Checksum is the SHA-256
// of the raw file bytes and keys the summary cache.
type Dataset struct {
	Path     string
	Checksum string
	Records  []Record
}

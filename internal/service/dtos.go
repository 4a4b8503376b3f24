package service

// TitleScore is one ranked result row: a job title and the arithmetic mean
// of the numeric engagement across its respondents with a recognized level.
// Respondents counts only the rows that contributed to the mean; it is kept
// for the snapshot store and logs, not for the output file.
type TitleScore struct {
	JobTitle           string
	AvgEngagementLevel float64
	Respondents        int
}

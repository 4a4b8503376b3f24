package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/engagehq/engagement-report/internal/survey"
)

// ErrInputNotFound is the one recognized error of the pipeline: the input
// file is absent. The wrapped message carries the attempted path.
var ErrInputNotFound = errors.New("input file not found")

const fieldsPerRecord = 7

// Load reads the survey CSV at path into a Dataset. The first line is the
// header and is discarded; every remaining line must conform to the Record
// schema. A row that does not parse fails the load with its line number.
func Load(path string) (*survey.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s, please check the file path", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	sum := sha256.Sum256(raw)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = fieldsPerRecord

	ds := &survey.Dataset{
		Path:     path,
		Checksum: hex.EncodeToString(sum[:]),
	}

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			// Empty file: no header, no rows.
			return ds, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	for line := 2; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		record, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", path, line, err)
		}
		ds.Records = append(ds.Records, record)
	}

	return ds, nil
}

func parseRecord(fields []string) (survey.Record, error) {
	employeeID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return survey.Record{}, fmt.Errorf("EmployeeID %q: %w", fields[0], err)
	}

	rating, err := strconv.Atoi(fields[3])
	if err != nil {
		return survey.Record{}, fmt.Errorf("SatisfactionRating %q: %w", fields[3], err)
	}

	concerns, err := strconv.ParseBool(fields[5])
	if err != nil {
		return survey.Record{}, fmt.Errorf("ReportsConcerns %q: %w", fields[5], err)
	}

	suggestions, err := strconv.ParseBool(fields[6])
	if err != nil {
		return survey.Record{}, fmt.Errorf("ProvidedSuggestions %q: %w", fields[6], err)
	}

	return survey.Record{
		EmployeeID:          employeeID,
		Department:          fields[1],
		JobTitle:            fields[2],
		SatisfactionRating:  rating,
		EngagementLevel:     survey.EngagementLevel(fields[4]),
		ReportsConcerns:     concerns,
		ProvidedSuggestions: suggestions,
	}, nil
}

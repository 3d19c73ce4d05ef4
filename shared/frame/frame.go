// Package frame wraps the gota dataframe calls shared by the slot and room stores.
package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"roomslots/shared/failure"
)

var errNoHeader = errors.New("csv has no header row")

// Read parses CSV with a header row. Columns listed in types are converted to that type,
// every other column stays a string. A header-only input yields a frame with zero rows.
func Read(r io.Reader, types map[string]series.Type) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) == 0 {
		return dataframe.DataFrame{}, failure.InvalidData(errNoHeader)
	}

	if len(records) == 1 {
		return Empty(records[0], types), nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, failure.InvalidData(fmt.Errorf("failed to load records: %w", df.Err))
	}

	return df, nil
}

// Empty builds a zero-row frame with the given column names.
func Empty(names []string, types map[string]series.Type) dataframe.DataFrame {
	columns := make([]series.Series, len(names))
	for i, name := range names {
		t, ok := types[name]
		if !ok {
			t = series.String
		}

		columns[i] = series.New([]string{}, t, name)
	}

	return dataframe.New(columns...)
}

// Write renders the frame as CSV with a header row.
func Write(w io.Writer, df dataframe.DataFrame) error {
	if df.Err != nil {
		return fmt.Errorf("invalid dataframe: %w", df.Err)
	}

	if err := df.WriteCSV(w, dataframe.WriteHeader(true)); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}

func column(df dataframe.DataFrame, name string) (series.Series, error) {
	col := df.Col(name)
	if col.Err != nil {
		return col, fmt.Errorf("%s: %w", name, failure.ErrMissingColumn)
	}

	return col, nil
}

// Strings returns the raw values of a column.
func Strings(df dataframe.DataFrame, name string) ([]string, error) {
	col, err := column(df, name)
	if err != nil {
		return nil, err
	}

	return col.Records(), nil
}

// Ints returns a column as integers, failing on blanks or non-numeric cells.
func Ints(df dataframe.DataFrame, name string) ([]int, error) {
	col, err := column(df, name)
	if err != nil {
		return nil, err
	}

	values, err := col.Int()
	if err != nil {
		return nil, failure.InvalidData(fmt.Errorf("column %s: %w", name, err))
	}

	return values, nil
}

// Bools parses a column of True/False style cells in any letter case, failing on blanks
// or unrecognised cells. The column is read from its raw records so a frame keeps the
// spelling of its source file.
func Bools(df dataframe.DataFrame, name string) ([]bool, error) {
	col, err := column(df, name)
	if err != nil {
		return nil, err
	}

	records := col.Records()
	values := make([]bool, len(records))

	for i, record := range records {
		values[i], err = strconv.ParseBool(record)
		if err != nil {
			return nil, failure.InvalidData(fmt.Errorf("column %s row %d: %w", name, i+1, err))
		}
	}

	return values, nil
}

// Distinct returns the unique values in first-seen order.
func Distinct[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	unique := make([]T, 0, len(values))

	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}

		seen[value] = struct{}{}
		unique = append(unique, value)
	}

	return unique
}

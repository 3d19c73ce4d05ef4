package dto

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	SampleSize       = 10
	RoomSummaryLimit = 15
)

const (
	tabMinWidth = 0
	tabWidth    = 4
	tabPadding  = 2
	tabPadChar  = ' '
)

// GenerateResult summarises one generator run.
type GenerateResult struct {
	Generated  int
	Total      int
	Businesses []string
	Rooms      int
}

func (r GenerateResult) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Generated %d new room slots\nTotal room slots: %d\nBusinesses included: %s\nRooms included: %d\n",
		r.Generated,
		r.Total,
		quoteList(r.Businesses),
		r.Rooms,
	)

	return err
}

type BusinessSummary struct {
	BusinessName string
	UniqueRooms  int
	TotalSlots   int
}

type RoomSummary struct {
	BusinessName string
	RoomName     string
	SlotsCount   int
}

// Report is what the verifier prints about a combined slots file.
type Report struct {
	TotalRows       int
	Columns         []string
	Businesses      []string
	UniqueRooms     int
	MinDate         string
	MaxDate         string
	Sample          [][]string
	BusinessSummary []BusinessSummary
	RoomSummary     []RoomSummary
}

func (r Report) Render(w io.Writer) error {
	var b strings.Builder

	b.WriteString("=== ROOM SLOTS EXPANDED DATA VERIFICATION ===\n")
	fmt.Fprintf(&b, "Total rows: %d\n", r.TotalRows)
	fmt.Fprintf(&b, "Columns: %s\n", quoteList(r.Columns))
	fmt.Fprintf(&b, "Businesses included: %s\n", quoteList(r.Businesses))
	fmt.Fprintf(&b, "Number of unique rooms: %d\n", r.UniqueRooms)

	if r.TotalRows == 0 {
		b.WriteString("Date range: n/a (no rows)\n")
	} else {
		fmt.Fprintf(&b, "Date range: %s to %s\n", r.MinDate, r.MaxDate)
	}

	fmt.Fprintf(&b, "\n=== SAMPLE DATA (first %d rows) ===\n", SampleSize)
	writeTable(&b, r.Columns, r.Sample)

	b.WriteString("\n=== BUSINESS SUMMARY ===\n")

	businessRows := make([][]string, len(r.BusinessSummary))
	for i, s := range r.BusinessSummary {
		businessRows[i] = []string{s.BusinessName, fmt.Sprint(s.UniqueRooms), fmt.Sprint(s.TotalSlots)}
	}

	writeTable(&b, []string{"business_name", "unique_rooms", "total_slots"}, businessRows)

	b.WriteString("\n=== ROOM SUMMARY ===\n")

	roomRows := make([][]string, len(r.RoomSummary))
	for i, s := range r.RoomSummary {
		roomRows[i] = []string{s.BusinessName, s.RoomName, fmt.Sprint(s.SlotsCount)}
	}

	writeTable(&b, []string{"business_name", "room_name", "slots_count"}, roomRows)

	_, err := io.WriteString(w, b.String())

	return err
}

// PublishResult lists where a combined slots file was shipped.
type PublishResult struct {
	Skipped      bool
	RunID        string
	Rows         int
	PostgresRows int
	ObjectURL    string
}

func (r PublishResult) Render(w io.Writer) error {
	if r.Skipped {
		_, err := io.WriteString(w, "Nothing to publish: no destination is enabled\n")

		return err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Publish run: %s\n", r.RunID)
	fmt.Fprintf(&b, "Rows read: %d\n", r.Rows)

	if r.PostgresRows > 0 {
		fmt.Fprintf(&b, "Rows written to Postgres: %d\n", r.PostgresRows)
	}

	if r.ObjectURL != "" {
		fmt.Fprintf(&b, "Uploaded to: %s\n", r.ObjectURL)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, value := range values {
		quoted[i] = fmt.Sprintf("'%s'", value)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}

func writeTable(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)

	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	_ = tw.Flush()
}

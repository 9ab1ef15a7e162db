package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gocarina/gocsv"
	"github.com/rhyrak/wolf-scheduler/pkg/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// WriteCourseRecords writes one course record per line to the file at path,
// replacing any previous content.
func (s *Store) WriteCourseRecords(path string, courses []*model.Course) error {
	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := s.WriteCourses(out, courses); err != nil {
		return err
	}
	return out.Close()
}

// WriteCourses is WriteCourseRecords over an arbitrary writer.
func (s *Store) WriteCourses(out io.Writer, courses []*model.Course) error {
	writer := csv.NewWriter(out)
	writer.Comma = s.Comma
	w := gocsv.NewSafeCSVWriter(writer)

	for _, c := range courses {
		if err := w.Write(c.Record()); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Name(), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush course records: %w", err)
	}
	return nil
}

// ExportScheduleTable writes the full schedule table, with a header row, to
// the CSV file specified by the given path.
func ExportScheduleTable(courses []*model.Course, path string) error {
	rows := scheduleRows(courses)

	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("failed to write schedule table: %w", err)
	}
	return out.Close()
}

// ExportScheduleString returns the full schedule table as CSV text.
func ExportScheduleString(courses []*model.Course) (string, error) {
	rows := scheduleRows(courses)
	return gocsv.MarshalString(&rows)
}

// PrintSchedule renders the full schedule as a table, ordered by course name
// and section.
func PrintSchedule(w io.Writer, title string, courses []*model.Course) {
	rows := scheduleRows(courses)
	slices.SortFunc(rows, func(r1, r2 *model.ScheduleRow) int {
		if name := strings.Compare(r1.Name, r2.Name); name != 0 {
			return name
		}
		return strings.Compare(r1.Section, r2.Section)
	})

	credits := 0
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("NAME", "SECTION", "TITLE", "CREDITS", "INSTRUCTOR", "MEETING")
	for _, r := range rows {
		t.Row(r.Cells()...)
		credits += r.Credits
	}

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, footerStyle.Render("Courses: "+strconv.Itoa(len(rows))+"  Credits: "+strconv.Itoa(credits)))
}

// PrintCatalog renders name, section and title rows as a table.
func PrintCatalog(w io.Writer, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("NAME", "SECTION", "TITLE").
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, footerStyle.Render("Courses: "+strconv.Itoa(len(rows))))
}

func scheduleRows(courses []*model.Course) []*model.ScheduleRow {
	rows := make([]*model.ScheduleRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, model.NewScheduleRow(c))
	}
	return rows
}

package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/wolf-scheduler/internal/logger"
	"github.com/rhyrak/wolf-scheduler/pkg/model"
)

const (
	arrangedFieldCount = 6
	fullFieldCount     = 8

	// legacyArranged is the arranged marker used by older record files.
	legacyArranged = "A"
)

// courseRecord is one line of a course record file, in column order.
type courseRecord struct {
	Name         string  `csv:"name"`
	Title        string  `csv:"title"`
	Section      string  `csv:"section"`
	Credits      decimal `csv:"credits"`
	InstructorID string  `csv:"instructor_id"`
	MeetingDays  string  `csv:"meeting_days"`
	StartTime    decimal `csv:"start_time"`
	EndTime      decimal `csv:"end_time"`
}

// decimal is a base 10 record number; 0830 is 830 and an empty cell is an
// error.
type decimal int

func (d *decimal) UnmarshalCSV(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*d = decimal(n)
	return nil
}

// Store reads and writes course record files.
type Store struct {
	Comma rune
}

func NewStore(delim rune) *Store {
	return &Store{Comma: delim}
}

// ReadCourseRecords loads every well-formed course from the record file at
// path. Malformed records are skipped; only an unreadable file is an error.
func (s *Store) ReadCourseRecords(path string) ([]*model.Course, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return s.ReadCourses(f)
}

// ReadCourses is ReadCourseRecords over an arbitrary reader.
func (s *Store) ReadCourses(in io.Reader) ([]*model.Course, error) {
	r := csv.NewReader(in)
	r.Comma = s.Comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	courses := []*model.Course{}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logger.Warn().Int("line", parseErr.Line).Err(err).Msg("skipping unreadable course record")
				continue
			}
			return nil, fmt.Errorf("failed to read course records: %w", err)
		}

		course, err := parseCourse(row)
		if err != nil {
			line, _ := r.FieldPos(0)
			ev := logger.Warn().Int("line", line)
			var vErr *model.ValidationError
			if errors.As(err, &vErr) {
				ev = ev.Str("field", vErr.Field)
			}
			ev.Err(err).Msg("skipping invalid course record")
			continue
		}
		courses = append(courses, course)
	}

	logger.Debug().Int("courses", len(courses)).Msg("course records loaded")
	return courses, nil
}

func parseCourse(row []string) (*model.Course, error) {
	if len(row) != arrangedFieldCount && len(row) != fullFieldCount {
		return nil, fmt.Errorf("expected %d or %d fields, got %d", arrangedFieldCount, fullFieldCount, len(row))
	}

	records := []*courseRecord{}
	if err := gocsv.UnmarshalCSVWithoutHeaders(singleRow(row), &records); err != nil {
		return nil, err
	}
	rec := records[0]

	if rec.MeetingDays == legacyArranged {
		rec.MeetingDays = model.Arranged
	}

	if rec.MeetingDays == model.Arranged {
		if len(row) != arrangedFieldCount {
			return nil, errors.New("arranged course must not carry meeting times")
		}
		return model.NewArrangedCourse(rec.Name, rec.Title, rec.Section, int(rec.Credits), rec.InstructorID, rec.MeetingDays)
	}

	if len(row) != fullFieldCount {
		return nil, errors.New("meeting times are missing")
	}
	return model.NewCourse(rec.Name, rec.Title, rec.Section, int(rec.Credits), rec.InstructorID, rec.MeetingDays, int(rec.StartTime), int(rec.EndTime))
}

// singleRow feeds one already split record to gocsv.
type singleRow []string

func (r singleRow) Read() ([]string, error) {
	return r, nil
}

func (r singleRow) ReadAll() ([][]string, error) {
	return [][]string{r}, nil
}

package scheduler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rhyrak/wolf-scheduler/pkg/model"
)

// DefaultTitle is the title of a new schedule.
const DefaultTitle = "My Schedule"

var (
	ErrSourceUnavailable = errors.New("cannot find file")
	ErrCannotSave        = errors.New("the file cannot be saved")
	ErrInvalidTitle      = errors.New("title cannot be null")
)

// DuplicateEnrollmentError is returned when a course with the same name is
// already on the schedule, whatever its section.
type DuplicateEnrollmentError struct {
	Name string
}

func (e *DuplicateEnrollmentError) Error() string {
	return "You are already enrolled in " + e.Name
}

// RecordSource produces the validated courses stored at source.
type RecordSource interface {
	ReadCourseRecords(source string) ([]*model.Course, error)
}

// RecordSink stores courses at destination.
type RecordSink interface {
	WriteCourseRecords(destination string, courses []*model.Course) error
}

type RecordIO interface {
	RecordSource
	RecordSink
}

// Scheduler holds a read-only course catalog and a schedule of courses
// picked from it. Schedule entries point into the catalog.
type Scheduler struct {
	title    string
	catalog  []*model.Course
	schedule []*model.Course
	records  RecordSink
}

// New loads the catalog from source. Any import failure is reported as
// ErrSourceUnavailable.
func New(source string, records RecordIO) (*Scheduler, error) {
	catalog, err := records.ReadCourseRecords(source)
	if err != nil {
		return nil, ErrSourceUnavailable
	}
	if catalog == nil {
		catalog = []*model.Course{}
	}

	return &Scheduler{
		title:    DefaultTitle,
		catalog:  catalog,
		schedule: []*model.Course{},
		records:  records,
	}, nil
}

// CourseCatalog returns name, section and title of every catalog course.
func (s *Scheduler) CourseCatalog() [][]string {
	return shortTable(s.catalog)
}

// ScheduledCourses returns name, section and title of every scheduled course.
func (s *Scheduler) ScheduledCourses() [][]string {
	return shortTable(s.schedule)
}

// FullScheduledCourses returns name, section, title, credits, instructor id
// and meeting string of every scheduled course.
func (s *Scheduler) FullScheduledCourses() [][]string {
	table := make([][]string, 0, len(s.schedule))
	for _, c := range s.schedule {
		table = append(table, []string{
			c.Name(),
			c.Section(),
			c.Title(),
			strconv.Itoa(c.Credits()),
			c.InstructorID(),
			c.MeetingString(),
		})
	}
	return table
}

func shortTable(courses []*model.Course) [][]string {
	table := make([][]string, 0, len(courses))
	for _, c := range courses {
		table = append(table, []string{c.Name(), c.Section(), c.Title()})
	}
	return table
}

// CourseFromCatalog returns the first catalog course with the given name and
// section, or nil.
func (s *Scheduler) CourseFromCatalog(name, section string) *model.Course {
	for _, c := range s.catalog {
		if c.Matches(name, section) {
			return c
		}
	}
	return nil
}

// AddCourseToSchedule appends the catalog course to the schedule. It returns
// false when the catalog has no such course and a DuplicateEnrollmentError
// when a course with the same name is already scheduled.
func (s *Scheduler) AddCourseToSchedule(name, section string) (bool, error) {
	course := s.CourseFromCatalog(name, section)
	if course == nil {
		return false, nil
	}

	for _, c := range s.schedule {
		if c.Name() == name {
			return false, &DuplicateEnrollmentError{Name: name}
		}
	}

	s.schedule = append(s.schedule, course)
	return true, nil
}

// RemoveCourseFromSchedule removes the first scheduled course with the given
// name and section.
func (s *Scheduler) RemoveCourseFromSchedule(name, section string) bool {
	for i, c := range s.schedule {
		if c.Matches(name, section) {
			s.schedule = append(s.schedule[:i], s.schedule[i+1:]...)
			return true
		}
	}
	return false
}

// ResetSchedule empties the schedule. The catalog and title are kept.
func (s *Scheduler) ResetSchedule() {
	s.schedule = []*model.Course{}
}

func (s *Scheduler) ScheduleTitle() string {
	return s.title
}

// SetScheduleTitle fails with ErrInvalidTitle when title is nil. An empty
// title is accepted.
func (s *Scheduler) SetScheduleTitle(title *string) error {
	if title == nil {
		return ErrInvalidTitle
	}
	s.title = *title
	return nil
}

// Schedule returns the scheduled courses in insertion order. The slice is a
// copy; the courses are shared with the catalog.
func (s *Scheduler) Schedule() []*model.Course {
	return append([]*model.Course(nil), s.schedule...)
}

// TotalCredits sums the credits of the scheduled courses.
func (s *Scheduler) TotalCredits() int {
	total := 0
	for _, c := range s.schedule {
		total += c.Credits()
	}
	return total
}

// ExportSchedule writes the schedule to destination. Any failure is reported
// as ErrCannotSave.
func (s *Scheduler) ExportSchedule(destination string) error {
	if err := s.records.WriteCourseRecords(destination, s.Schedule()); err != nil {
		return ErrCannotSave
	}
	return nil
}

func (s *Scheduler) String() string {
	return fmt.Sprintf("%s (%d of %d courses)", s.title, len(s.schedule), len(s.catalog))
}

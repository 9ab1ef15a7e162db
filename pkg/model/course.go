package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Arranged is the meeting-days value of a course without fixed meeting times.
const Arranged = "Arranged"

const (
	minNameLength = 5
	maxNameLength = 8
	sectionLength = 3
	minCredits    = 1
	maxCredits    = 5
	upperHour     = 24
	upperMinute   = 60
)

// 1-4 letters, a single space and exactly 3 digits, e.g. "CSC 216".
var namePattern = regexp.MustCompile(`^\pL{1,4} [0-9]{3}$`)

var sectionPattern = regexp.MustCompile(`^[0-9]{3}$`)

// weekDays lists the letters accepted in meeting days.
const weekDays = "MTWHF"

// Course is a single validated course offering. The zero value is not valid;
// build courses with NewCourse or NewArrangedCourse.
type Course struct {
	name         string
	title        string
	section      string
	credits      int
	instructorID string
	meetingDays  string
	startTime    int
	endTime      int
}

// NewCourse validates every field in order (name, title, section, credits,
// instructor id, meeting days and times) and returns the first failure.
func NewCourse(name, title, section string, credits int, instructorID, meetingDays string, startTime, endTime int) (*Course, error) {
	checks := []func() error{
		func() error { return validateName(name) },
		func() error { return validateTitle(title) },
		func() error { return validateSection(section) },
		func() error { return validateCredits(credits) },
		func() error { return validateInstructorID(instructorID) },
		func() error { return validateMeetingDaysAndTime(meetingDays, startTime, endTime) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return nil, err
		}
	}

	return &Course{
		name:         name,
		title:        title,
		section:      section,
		credits:      credits,
		instructorID: instructorID,
		meetingDays:  meetingDays,
		startTime:    startTime,
		endTime:      endTime,
	}, nil
}

// NewArrangedCourse builds a course whose start and end times are both 0.
func NewArrangedCourse(name, title, section string, credits int, instructorID, meetingDays string) (*Course, error) {
	return NewCourse(name, title, section, credits, instructorID, meetingDays, 0, 0)
}

func (c *Course) Name() string         { return c.name }
func (c *Course) Title() string        { return c.title }
func (c *Course) Section() string      { return c.section }
func (c *Course) Credits() int         { return c.credits }
func (c *Course) InstructorID() string { return c.instructorID }
func (c *Course) MeetingDays() string  { return c.meetingDays }
func (c *Course) StartTime() int       { return c.startTime }
func (c *Course) EndTime() int         { return c.endTime }

// IsArranged reports whether the course has no fixed meeting days.
func (c *Course) IsArranged() bool {
	return c.meetingDays == Arranged
}

// SetTitle replaces the course title. It is the only field that may change
// after construction.
func (c *Course) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	c.title = title
	return nil
}

// Matches reports whether the course has the given name and section.
func (c *Course) Matches(name, section string) bool {
	return c.name == name && c.section == section
}

// MeetingString renders the meeting days and times for display,
// e.g. "MW 1:30PM-2:45PM", or "Arranged".
func (c *Course) MeetingString() string {
	if c.IsArranged() {
		return Arranged
	}
	return c.meetingDays + " " + timeString(c.startTime) + "-" + timeString(c.endTime)
}

// Equal compares all eight fields.
func (c *Course) Equal(other *Course) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// Record returns the serialized fields of the course. Start and end times
// are omitted for arranged courses.
func (c *Course) Record() []string {
	record := []string{
		c.name,
		c.title,
		c.section,
		strconv.Itoa(c.credits),
		c.instructorID,
		c.meetingDays,
	}
	if !c.IsArranged() {
		record = append(record, strconv.Itoa(c.startTime), strconv.Itoa(c.endTime))
	}
	return record
}

func (c *Course) String() string {
	return strings.Join(c.Record(), ",")
}

// timeString converts an HHMM time into 12-hour clock notation.
func timeString(time int) string {
	hour := time / 100
	min := time % 100

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
		if hour > 12 {
			hour -= 12
		}
	} else if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d%s", hour, min, suffix)
}

func validateName(name string) error {
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return invalid(FieldName, MsgInvalidName)
	}
	if !namePattern.MatchString(name) {
		return invalid(FieldName, MsgInvalidName)
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return invalid(FieldTitle, MsgInvalidTitle)
	}
	return nil
}

func validateSection(section string) error {
	if len(section) != sectionLength || !sectionPattern.MatchString(section) {
		return invalid(FieldSection, MsgInvalidSection)
	}
	return nil
}

func validateCredits(credits int) error {
	if credits < minCredits || credits > maxCredits {
		return invalid(FieldCredits, MsgInvalidCredits)
	}
	return nil
}

func validateInstructorID(instructorID string) error {
	if instructorID == "" {
		return invalid(FieldInstructor, MsgInvalidInstructor)
	}
	return nil
}

func validateMeetingDaysAndTime(meetingDays string, startTime, endTime int) error {
	if meetingDays == "" {
		return invalid(FieldMeetingTime, MsgInvalidMeetingTime)
	}

	if meetingDays == Arranged {
		if startTime != 0 || endTime != 0 {
			return invalid(FieldMeetingTime, MsgInvalidMeetingTime)
		}
		return nil
	}

	seen := make(map[rune]bool, len(weekDays))
	for _, day := range meetingDays {
		if !strings.ContainsRune(weekDays, day) || seen[day] {
			return invalid(FieldMeetingTime, MsgInvalidMeetingTime)
		}
		seen[day] = true
	}

	if startTime > endTime {
		return invalid(FieldMeetingTime, MsgInvalidMeetingTime)
	}

	for _, t := range []int{startTime, endTime} {
		hour, min := t/100, t%100
		if hour < 0 || hour >= upperHour || min < 0 || min >= upperMinute {
			return invalid(FieldMeetingTime, MsgInvalidMeetingTime)
		}
	}

	return nil
}

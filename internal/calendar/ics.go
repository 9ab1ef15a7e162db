package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/rhyrak/wolf-scheduler/pkg/model"
)

// floatingLayout renders a local date-time without a zone, so meetings keep
// their wall clock time across daylight saving changes.
const floatingLayout = "20060102T150405"

var eventNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("wolf-scheduler/course"))

var weekDays = map[rune]struct {
	byDay   string
	weekday time.Weekday
}{
	'M': {"MO", time.Monday},
	'T': {"TU", time.Tuesday},
	'W': {"WE", time.Wednesday},
	'H': {"TH", time.Thursday},
	'F': {"FR", time.Friday},
}

// GenerateICS writes one weekly recurring event per course meeting for the
// given number of weeks starting at termStart. Arranged courses have no
// meetings and are left out.
func GenerateICS(courses []*model.Course, termStart time.Time, weeks int, w io.Writer) error {
	if weeks <= 0 {
		return fmt.Errorf("weeks must be positive, got %d", weeks)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//WolfScheduler//Course Schedule//EN")

	termStart = time.Date(termStart.Year(), termStart.Month(), termStart.Day(), 0, 0, 0, 0, time.Local)
	until := termStart.AddDate(0, 0, 7*weeks-1).Add(24*time.Hour - time.Second)

	for _, c := range courses {
		if c.IsArranged() {
			continue
		}

		first, byDay := firstMeeting(c.MeetingDays(), termStart)
		start := at(first, c.StartTime())
		end := at(first, c.EndTime())

		event := cal.AddEvent(EventID(c))
		event.SetDtStampTime(time.Now())
		event.SetProperty(ics.ComponentPropertyDtStart, start.Format(floatingLayout))
		event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(floatingLayout))
		event.AddProperty(ics.ComponentPropertyRrule, fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", byDay, until.Format(floatingLayout)))
		event.SetSummary(c.Name() + " - " + c.Title())
		event.SetDescription(fmt.Sprintf("Section: %s\nInstructor: %s\nCredits: %d\nMeets: %s",
			c.Section(), c.InstructorID(), c.Credits(), c.MeetingString()))
	}

	return cal.SerializeTo(w)
}

// EventID derives a stable event UID from the course name and section.
func EventID(c *model.Course) string {
	return uuid.NewSHA1(eventNamespace, []byte(c.Name()+"/"+c.Section())).String() + "@wolfscheduler"
}

// firstMeeting returns the first day on or after from that the course meets,
// together with the BYDAY list of its meeting days.
func firstMeeting(meetingDays string, from time.Time) (time.Time, string) {
	var byDay []string
	first := time.Time{}
	for _, d := range meetingDays {
		day := weekDays[d]
		byDay = append(byDay, day.byDay)

		offset := (int(day.weekday) - int(from.Weekday()) + 7) % 7
		candidate := from.AddDate(0, 0, offset)
		if first.IsZero() || candidate.Before(first) {
			first = candidate
		}
	}
	return first, strings.Join(byDay, ",")
}

// at returns the wall clock time HHMM on the given day.
func at(day time.Time, t int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t/100, t%100, 0, 0, day.Location())
}

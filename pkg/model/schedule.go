package model

import "strconv"

// ScheduleRow is one line of the full schedule table.
type ScheduleRow struct {
	Name       string `csv:"name"`
	Section    string `csv:"section"`
	Title      string `csv:"title"`
	Credits    int    `csv:"credits"`
	Instructor string `csv:"instructor"`
	Meeting    string `csv:"meeting"`
}

/* NewScheduleRow projects a course onto the full schedule columns. */
func NewScheduleRow(c *Course) *ScheduleRow {
	return &ScheduleRow{
		Name:       c.Name(),
		Section:    c.Section(),
		Title:      c.Title(),
		Credits:    c.Credits(),
		Instructor: c.InstructorID(),
		Meeting:    c.MeetingString(),
	}
}

// Cells returns the row as display strings, in column order.
func (r *ScheduleRow) Cells() []string {
	return []string{r.Name, r.Section, r.Title, strconv.Itoa(r.Credits), r.Instructor, r.Meeting}
}

package scheduler

import (
	"fmt"

	"github.com/rhyrak/wolf-scheduler/pkg/model"
)

// Validate checks the schedule against the catalog and the credit limit.
// Returns false and a message for invalid schedules.
//
// AddCourseToSchedule already keeps the schedule to catalog entries with
// distinct names, so the membership and duplicate checks only fail if the
// schedule slice is changed outside the public methods.
func (s *Scheduler) Validate(maxCredits int) (bool, string) {
	var message string
	var valid bool = true
	var hasForeignCourse bool = false
	var hasDuplicateName bool = false

	for _, c := range s.schedule {
		if !s.inCatalog(c) {
			valid = false
			hasForeignCourse = true
			message += fmt.Sprintf("- %s %s is not a catalog course\n", c.Name(), c.Section())
		}
	}

	seen := make(map[string]bool, len(s.schedule))
	for _, c := range s.schedule {
		if seen[c.Name()] {
			valid = false
			hasDuplicateName = true
			message += "- " + c.Name() + " enrolled multiple times\n"
		}
		seen[c.Name()] = true
	}

	credits := s.TotalCredits()
	overLoaded := credits > maxCredits
	if overLoaded {
		valid = false
		message += fmt.Sprintf("- %d credits scheduled, limit is %d\n", credits, maxCredits)
	}

	if overLoaded {
		message = "[FAIL]: Credit load check.\n" + message
	} else {
		message = "[  OK]: Credit load check.\n" + message
	}
	if hasDuplicateName {
		message = "[FAIL]: Duplicate enrollment check.\n" + message
	} else {
		message = "[  OK]: Duplicate enrollment check.\n" + message
	}
	if hasForeignCourse {
		message = "[FAIL]: Catalog membership check.\n" + message
	} else {
		message = "[  OK]: Catalog membership check.\n" + message
	}

	return valid, message
}

// inCatalog compares by reference; schedule entries are never copies.
func (s *Scheduler) inCatalog(course *model.Course) bool {
	for _, c := range s.catalog {
		if c == course {
			return true
		}
	}
	return false
}

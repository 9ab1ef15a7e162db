package scheduler

import (
	"fmt"

	"github.com/rhyrak/wolf-scheduler/pkg/model"
)

// MemoryRecords is a RecordIO keeping course lists in memory, keyed by
// source or destination name.
type MemoryRecords struct {
	storage map[string][]*model.Course
}

func NewMemoryRecords() *MemoryRecords {
	return &MemoryRecords{storage: make(map[string][]*model.Course)}
}

// Set stores courses under key, replacing any previous list.
func (m *MemoryRecords) Set(key string, courses []*model.Course) {
	m.storage[key] = append([]*model.Course(nil), courses...)
}

// Get returns the courses stored under key.
func (m *MemoryRecords) Get(key string) ([]*model.Course, bool) {
	courses, ok := m.storage[key]
	return courses, ok
}

func (m *MemoryRecords) ReadCourseRecords(source string) ([]*model.Course, error) {
	courses, ok := m.storage[source]
	if !ok {
		return nil, fmt.Errorf("no records stored under %q", source)
	}
	return append([]*model.Course(nil), courses...), nil
}

func (m *MemoryRecords) WriteCourseRecords(destination string, courses []*model.Course) error {
	if destination == "" {
		return fmt.Errorf("empty destination")
	}
	m.Set(destination, courses)
	return nil
}

package model

import "errors"

// ErrInvalidCourse matches every ValidationError through errors.Is.
var ErrInvalidCourse = errors.New("invalid course")

const (
	MsgInvalidName        = "Invalid course name."
	MsgInvalidTitle       = "Invalid title."
	MsgInvalidSection     = "Invalid section."
	MsgInvalidCredits     = "Invalid credits."
	MsgInvalidInstructor  = "Invalid instructor id."
	MsgInvalidMeetingTime = "Invalid meeting days and times."
)

// Course field names reported by ValidationError.
const (
	FieldName        = "name"
	FieldTitle       = "title"
	FieldSection     = "section"
	FieldCredits     = "credits"
	FieldInstructor  = "instructorId"
	FieldMeetingTime = "meetingDays"
)

// ValidationError reports the first course field that failed validation.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCourse
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

package models

// Collection names shared by every storage backend
const (
	StudentsCollection    = "students"
	ClassesCollection     = "classes"
	EnrollmentsCollection = "enrollments"
)

// Term represents a semester term
type Term string

// TermFall is the term every sample student is registered for
const TermFall Term = "Fall"

package models

// Class defines a scheduled course section stored in the 'classes' collection
type Class struct {
	ClassID      string `json:"classId" bson:"classId" db:"class_id" validate:"required,max=64" example:"C001"` // Producer-assigned identifier
	CourseName   string `json:"courseName" bson:"courseName" db:"course_name" validate:"required" example:"Quantum Computing 101"`
	DateTime     string `json:"dateTime" bson:"dateTime" db:"date_time" example:"Mon 9AM"` // Free-form meeting time
	InstructorID string `json:"instructorId" bson:"instructorId" db:"instructor_id" example:"I001"`
	Location     string `json:"location" bson:"location" db:"location" example:"Room 101"`
}

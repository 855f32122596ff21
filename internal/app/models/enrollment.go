package models

// Enrollment links a student to a class by identifier value. Neither reference is
// enforced; either may point at a record that does not exist.
type Enrollment struct {
	EnrollmentID string `json:"enrollmentId" bson:"enrollmentId" db:"enrollment_id" validate:"required,max=64" example:"E001"`
	StudentID    string `json:"studentId" bson:"studentId" db:"student_id" validate:"required" example:"S001"`
	ClassID      string `json:"classId" bson:"classId" db:"class_id" validate:"required" example:"C001"`
}

package models

// Student defines the student record stored in the 'students' collection
type Student struct {
	StudentID string `json:"studentId" bson:"studentId" db:"student_id" validate:"required,max=64" example:"S001"` // Producer-assigned identifier
	FirstName string `json:"firstName" bson:"firstName" db:"first_name" validate:"required" example:"Joe"`
	LastName  string `json:"lastName" bson:"lastName" db:"last_name" validate:"required" example:"Smith"`
	Program   string `json:"program" bson:"program" db:"program" example:"Computer Science"`
	Term      Term   `json:"term" bson:"term" db:"term" example:"Fall"`
}

// Package seed holds the fixed sample records written by the seed and enroll
// commands.
package seed

import (
	"github.com/yigit/college/internal/app/models"
)

// Students returns the sample student batch in insertion order
func Students() []models.Student {
	return []models.Student{
		{StudentID: "S001", FirstName: "Joe", LastName: "Smith", Program: "Computer Science", Term: models.TermFall},
		{StudentID: "S002", FirstName: "Suzan", LastName: "Ross", Program: "Engineering", Term: models.TermFall},
		{StudentID: "S003", FirstName: "Peanut", LastName: "Bindger", Program: "Mathematics", Term: models.TermFall},
		{StudentID: "S004", FirstName: "Mark", LastName: "Jenkins", Program: "Physics", Term: models.TermFall},
		{StudentID: "S005", FirstName: "Alice", LastName: "Johnson", Program: "Biology", Term: models.TermFall},
		{StudentID: "S006", FirstName: "Bob", LastName: "Brown", Program: "Chemistry", Term: models.TermFall},
		{StudentID: "S007", FirstName: "Charlie", LastName: "Davis", Program: "Quantum Computing", Term: models.TermFall},
		{StudentID: "S008", FirstName: "Dana", LastName: "Miller", Program: "Artificial Intelligence", Term: models.TermFall},
		{StudentID: "S009", FirstName: "Eve", LastName: "White", Program: "Astrogation", Term: models.TermFall},
		{StudentID: "S010", FirstName: "Frank", LastName: "Green", Program: "Computational Biology", Term: models.TermFall},
		{StudentID: "S011", FirstName: "Grace", LastName: "Taylor", Program: "Computational Materials", Term: models.TermFall},
		{StudentID: "S012", FirstName: "Hank", LastName: "Wilson", Program: "Artificial Intelligence", Term: models.TermFall},
		{StudentID: "S013", FirstName: "Ivy", LastName: "Moore", Program: "Quantum Computing", Term: models.TermFall},
		{StudentID: "S014", FirstName: "Jack", LastName: "Anderson", Program: "Astrogation", Term: models.TermFall},
		{StudentID: "S015", FirstName: "Kate", LastName: "Thomas", Program: "Computational Biology", Term: models.TermFall},
		{StudentID: "S016", FirstName: "Leo", LastName: "Harris", Program: "Computational Materials", Term: models.TermFall},
		{StudentID: "S017", FirstName: "Mona", LastName: "Martinez", Program: "Artificial Intelligence", Term: models.TermFall},
		{StudentID: "S018", FirstName: "Nina", LastName: "Clark", Program: "Quantum Computing", Term: models.TermFall},
		{StudentID: "S019", FirstName: "Owen", LastName: "Lewis", Program: "Astrogation", Term: models.TermFall},
		{StudentID: "S020", FirstName: "Paul", LastName: "Lee", Program: "Computational Biology", Term: models.TermFall},
	}
}

// Classes returns the sample class batch in insertion order
func Classes() []models.Class {
	return []models.Class{
		{ClassID: "C001", CourseName: "Quantum Computing 101", DateTime: "Mon 9AM", InstructorID: "I001", Location: "Room 101"},
		{ClassID: "C002", CourseName: "Galactic Astrogation 101", DateTime: "Wed 11AM", InstructorID: "I002", Location: "Room 102"},
		{ClassID: "C003", CourseName: "Computational Biology 101", DateTime: "Fri 2PM", InstructorID: "I003", Location: "Room 103"},
		{ClassID: "C004", CourseName: "Computational Materials 101", DateTime: "Tue 10AM", InstructorID: "I004", Location: "Room 104"},
		{ClassID: "C005", CourseName: "Artificial Intelligence Engineering 101", DateTime: "Thu 3PM", InstructorID: "I005", Location: "Room 105"},
		{ClassID: "C006", CourseName: "Astrophysics 101", DateTime: "Mon 1PM", InstructorID: "I006", Location: "Room 106"},
	}
}

// Enrollments returns the sample enrollment batch in insertion order. Every
// reference resolves against Students and Classes.
func Enrollments() []models.Enrollment {
	return []models.Enrollment{
		{EnrollmentID: "E001", StudentID: "S001", ClassID: "C001"},
		{EnrollmentID: "E002", StudentID: "S001", ClassID: "C002"},
		{EnrollmentID: "E003", StudentID: "S002", ClassID: "C001"},
		{EnrollmentID: "E004", StudentID: "S003", ClassID: "C003"},
		{EnrollmentID: "E005", StudentID: "S004", ClassID: "C004"},
		{EnrollmentID: "E006", StudentID: "S005", ClassID: "C005"},
		{EnrollmentID: "E007", StudentID: "S006", ClassID: "C006"},
		{EnrollmentID: "E008", StudentID: "S007", ClassID: "C001"},
		{EnrollmentID: "E009", StudentID: "S008", ClassID: "C005"},
		{EnrollmentID: "E010", StudentID: "S009", ClassID: "C002"},
		{EnrollmentID: "E011", StudentID: "S010", ClassID: "C003"},
		{EnrollmentID: "E012", StudentID: "S011", ClassID: "C004"},
		{EnrollmentID: "E013", StudentID: "S012", ClassID: "C005"},
		{EnrollmentID: "E014", StudentID: "S013", ClassID: "C001"},
		{EnrollmentID: "E015", StudentID: "S014", ClassID: "C002"},
		{EnrollmentID: "E016", StudentID: "S015", ClassID: "C003"},
		{EnrollmentID: "E017", StudentID: "S016", ClassID: "C004"},
		{EnrollmentID: "E018", StudentID: "S017", ClassID: "C005"},
		{EnrollmentID: "E019", StudentID: "S018", ClassID: "C001"},
		{EnrollmentID: "E020", StudentID: "S019", ClassID: "C002"},
		{EnrollmentID: "E021", StudentID: "S020", ClassID: "C003"},
	}
}

package models

// EnrollmentReportRow is one joined (enrollment, student, class) combination
type EnrollmentReportRow struct {
	EnrollmentID   string         `json:"enrollmentId" bson:"enrollmentId" yaml:"enrollmentId"`
	StudentDetails StudentDetails `json:"studentDetails" bson:"studentDetails" yaml:"studentDetails"`
	ClassDetails   ClassDetails   `json:"classDetails" bson:"classDetails" yaml:"classDetails"`
}

// StudentDetails holds the student fields projected into a report row
type StudentDetails struct {
	FirstName string `json:"firstName" bson:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" bson:"lastName" yaml:"lastName"`
}

// ClassDetails holds the class fields projected into a report row
type ClassDetails struct {
	CourseName string `json:"courseName" bson:"courseName" yaml:"courseName"`
	DateTime   string `json:"dateTime" bson:"dateTime" yaml:"dateTime"`
	Location   string `json:"location" bson:"location" yaml:"location"`
}

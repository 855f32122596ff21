package report

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/college/internal/app/models"
)

// Aliases the lookup stages write matches into. They double as the nested keys of
// the projected row.
const (
	studentDetailsField = "studentDetails"
	classDetailsField   = "classDetails"
)

// EnrollmentPipeline returns the aggregation run against the enrollments
// collection. Both $unwind stages drop documents whose lookup matched nothing
// and emit one document per match otherwise, which is the same inner-join
// fan-out Join performs in memory.
func EnrollmentPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		lookupStage(models.StudentsCollection, "studentId", studentDetailsField),
		lookupStage(models.ClassesCollection, "classId", classDetailsField),
		{{Key: "$unwind", Value: "$" + studentDetailsField}},
		{{Key: "$unwind", Value: "$" + classDetailsField}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "enrollmentId", Value: 1},
			{Key: studentDetailsField + ".firstName", Value: 1},
			{Key: studentDetailsField + ".lastName", Value: 1},
			{Key: classDetailsField + ".courseName", Value: 1},
			{Key: classDetailsField + ".dateTime", Value: 1},
			{Key: classDetailsField + ".location", Value: 1},
		}}},
	}
}

func lookupStage(from, field, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: field},
		{Key: "foreignField", Value: field},
		{Key: "as", Value: as},
	}}}
}

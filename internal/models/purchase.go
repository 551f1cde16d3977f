package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Purchase marks a user's entitlement to a course. Uniqueness per
// (user, course) is checked at buy time, not enforced by an index.
type Purchase struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"userId"`
	CourseID primitive.ObjectID `bson:"course_id" json:"courseId"`
}

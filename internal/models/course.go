package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseImage references the uploaded thumbnail in object storage.
type CourseImage struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       int                `bson:"price" json:"price"`
	Image       CourseImage        `bson:"image" json:"image"`
	CreatorID   primitive.ObjectID `bson:"creator_id" json:"creatorId"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

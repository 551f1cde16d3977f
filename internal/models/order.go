package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is the append-only audit record of a verified payment.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	CourseID  primitive.ObjectID `bson:"course_id" json:"courseId"`
	PaymentID string             `bson:"payment_id" json:"paymentId"`
	Amount    int                `bson:"amount" json:"amount"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

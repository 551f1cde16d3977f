package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rohanks-dev/coursebay/internal/db"
	"github.com/rohanks-dev/coursebay/internal/gateway"
	"github.com/rohanks-dev/coursebay/internal/models"
)

// BuyCourse asks the gateway for an order covering the course price in
// minor units. Nothing is persisted locally at this stage; an abandoned
// checkout leaves no record.
func BuyCourse(userID, courseID string) (string, int, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", 0, errors.New("invalid user id")
	}
	cid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return "", 0, ErrCourseNotFound
	}

	var course models.Course
	err = db.GetCollection("courses").FindOne(context.TODO(), bson.M{"_id": cid}).Decode(&course)
	if err != nil {
		return "", 0, ErrCourseNotFound
	}

	var existing models.Purchase
	err = db.GetCollection("purchases").FindOne(context.TODO(), bson.M{"user_id": uid, "course_id": cid}).Decode(&existing)
	if err == nil {
		return "", 0, ErrAlreadyPurchased
	}

	amount := course.Price * 100
	orderID, err := gateway.CreateOrder(amount, "receipt_"+courseID)
	if err != nil {
		return "", 0, err
	}
	return orderID, amount, nil
}

// VerifyPayment checks the gateway callback signature and, on a match,
// records the Order then the Purchase. The two inserts are independent
// writes; a crash between them leaves an Order without a Purchase.
func VerifyPayment(userID, orderID, paymentID, signature, courseID string) (models.Order, error) {
	if !gateway.VerifySignature(orderID, paymentID, signature) {
		return models.Order{}, ErrBadSignature
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.Order{}, errors.New("invalid user id")
	}
	cid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return models.Order{}, ErrCourseNotFound
	}

	var user models.User
	err = db.GetCollection("users").FindOne(context.TODO(), bson.M{"_id": uid}).Decode(&user)
	if err != nil {
		return models.Order{}, ErrUserNotFound
	}

	var course models.Course
	err = db.GetCollection("courses").FindOne(context.TODO(), bson.M{"_id": cid}).Decode(&course)
	if err != nil {
		return models.Order{}, ErrCourseNotFound
	}

	order := models.Order{
		ID:        primitive.NewObjectID(),
		Name:      user.FirstName + " " + user.LastName,
		Email:     user.Email,
		UserID:    uid,
		CourseID:  cid,
		PaymentID: paymentID,
		Amount:    course.Price,
		Status:    "success",
		CreatedAt: time.Now(),
	}
	if _, err := db.GetCollection("orders").InsertOne(context.TODO(), order); err != nil {
		return models.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	purchase := models.Purchase{
		ID:       primitive.NewObjectID(),
		UserID:   uid,
		CourseID: cid,
	}
	if _, err := db.GetCollection("purchases").InsertOne(context.TODO(), purchase); err != nil {
		return models.Order{}, fmt.Errorf("failed to save purchase: %w", err)
	}

	return order, nil
}

// ListPurchased returns the user's purchase records and the courses they
// reference.
func ListPurchased(userID string) ([]models.Purchase, []models.Course, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil, errors.New("invalid user id")
	}

	cursor, err := db.GetCollection("purchases").Find(context.TODO(), bson.M{"user_id": uid})
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(context.TODO())

	purchased := []models.Purchase{}
	if err := cursor.All(context.TODO(), &purchased); err != nil {
		return nil, nil, err
	}

	courseIDs := make([]primitive.ObjectID, 0, len(purchased))
	for _, p := range purchased {
		courseIDs = append(courseIDs, p.CourseID)
	}

	courseData := []models.Course{}
	if len(courseIDs) > 0 {
		ccursor, err := db.GetCollection("courses").Find(context.TODO(), bson.M{"_id": bson.M{"$in": courseIDs}})
		if err != nil {
			return nil, nil, err
		}
		defer ccursor.Close(context.TODO())
		if err := ccursor.All(context.TODO(), &courseData); err != nil {
			return nil, nil, err
		}
	}

	return purchased, courseData, nil
}

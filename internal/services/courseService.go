package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rohanks-dev/coursebay/internal/db"
	"github.com/rohanks-dev/coursebay/internal/models"
	"github.com/rohanks-dev/coursebay/internal/storage"
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// uploadCourseImage pushes the multipart thumbnail to object storage and
// returns the stored reference.
func uploadCourseImage(c *fiber.Ctx, courseID primitive.ObjectID) (models.CourseImage, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.CourseImage{}, errors.New("no file uploaded")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return models.CourseImage{}, errors.New("invalid file format, only png and jpg are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.CourseImage{}, errors.New("failed to open file")
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s_%s", courseID.Hex(), fileHeader.Filename)
	url, err := storage.UploadImage(context.Background(), objectName, file, fileHeader.Size, contentType)
	if err != nil {
		return models.CourseImage{}, err
	}

	return models.CourseImage{PublicID: objectName, URL: url}, nil
}

// CreateCourse inserts a course owned by the calling admin. Title,
// description, price and an image file are all required.
func CreateCourse(c *fiber.Ctx, adminID string) (models.Course, error) {
	creatorID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return models.Course{}, errors.New("invalid admin id")
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	priceStr := c.FormValue("price")
	if title == "" || description == "" || priceStr == "" {
		return models.Course{}, errors.New("all fields are required")
	}
	price, err := strconv.Atoi(priceStr)
	if err != nil {
		return models.Course{}, errors.New("price must be a number")
	}

	courseID := primitive.NewObjectID()
	image, err := uploadCourseImage(c, courseID)
	if err != nil {
		return models.Course{}, err
	}

	course := models.Course{
		ID:          courseID,
		Title:       title,
		Description: description,
		Price:       price,
		Image:       image,
		CreatorID:   creatorID,
		CreatedAt:   time.Now(),
	}

	collection := db.GetCollection("courses")
	if _, err := collection.InsertOne(context.TODO(), course); err != nil {
		return models.Course{}, fmt.Errorf("%w: failed to save course: %v", ErrInternal, err)
	}
	return course, nil
}

// UpdateCourse rewrites title/description/price on a course the admin owns.
// A new image file is optional; the previous object stays in the bucket.
func UpdateCourse(c *fiber.Ctx, adminID, courseID string) (models.Course, error) {
	creatorID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return models.Course{}, errors.New("invalid admin id")
	}
	objID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return models.Course{}, ErrCourseNotFound
	}

	collection := db.GetCollection("courses")

	var course models.Course
	err = collection.FindOne(context.TODO(), bson.M{"_id": objID, "creator_id": creatorID}).Decode(&course)
	if err != nil {
		// Missing or owned by someone else; callers can't tell which.
		return models.Course{}, ErrNotOwner
	}

	if _, ferr := c.FormFile("image"); ferr == nil {
		image, err := uploadCourseImage(c, objID)
		if err != nil {
			return models.Course{}, err
		}
		course.Image = image
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	priceStr := c.FormValue("price")
	if title == "" || description == "" || priceStr == "" {
		return models.Course{}, errors.New("all fields are required")
	}
	price, err := strconv.Atoi(priceStr)
	if err != nil {
		return models.Course{}, errors.New("price must be a number")
	}

	course.Title = title
	course.Description = description
	course.Price = price

	_, err = collection.UpdateOne(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"title":       course.Title,
			"description": course.Description,
			"price":       course.Price,
			"image":       course.Image,
		}},
	)
	if err != nil {
		return models.Course{}, fmt.Errorf("%w: failed to update course: %v", ErrInternal, err)
	}
	return course, nil
}

// DeleteCourse removes a course the admin owns. The image object is left
// behind in storage.
func DeleteCourse(adminID, courseID string) error {
	creatorID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return errors.New("invalid admin id")
	}
	objID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return ErrCourseNotFound
	}

	collection := db.GetCollection("courses")
	result := collection.FindOneAndDelete(context.TODO(), bson.M{"_id": objID, "creator_id": creatorID})
	if result.Err() != nil {
		return ErrNotOwner
	}
	return nil
}

// ListCourses returns every course. Unauthenticated read.
func ListCourses() ([]models.Course, error) {
	collection := db.GetCollection("courses")

	cursor, err := collection.Find(context.TODO(), bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	courses := []models.Course{}
	if err := cursor.All(context.TODO(), &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CourseDetails fetches a single course by id.
func CourseDetails(courseID string) (models.Course, error) {
	objID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return models.Course{}, ErrCourseNotFound
	}

	collection := db.GetCollection("courses")

	var course models.Course
	err = collection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, err
	}
	return course, nil
}

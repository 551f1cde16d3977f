package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/rohanks-dev/coursebay/internal/db"
	"github.com/rohanks-dev/coursebay/internal/models"
)

var validate = validator.New()

var (
	userJWTSecret  string
	adminJWTSecret string
)

// InitAuth sets the per-principal JWT signing secrets.
func InitAuth(userSecret, adminSecret string) {
	userJWTSecret = userSecret
	adminJWTSecret = adminSecret
}

// SignupInput carries the signup form for either principal kind.
type SignupInput struct {
	FirstName string `json:"firstName" validate:"required,min=3"`
	LastName  string `json:"lastName" validate:"required,min=3"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=7"`
}

// ValidateSignup returns one message per failed field, empty when valid.
func ValidateSignup(in SignupInput) []string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "FirstName":
			msgs = append(msgs, "FirstName should be minimum 3 char long")
		case "LastName":
			msgs = append(msgs, "LastName should be minimum 3 char long")
		case "Email":
			msgs = append(msgs, "Enter valid Email")
		case "Password":
			msgs = append(msgs, "Password length should be greater than 7")
		}
	}
	return msgs
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT signs a 1-day token carrying only the principal id.
func GenerateJWT(id, secret string) (string, error) {
	claims := jwt.MapClaims{
		"id":  id,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SignupUser registers an end user. The returned document never carries
// the password hash.
func SignupUser(in SignupInput) (models.User, error) {
	collection := db.GetCollection("users")

	var existing models.User
	err := collection.FindOne(context.TODO(), bson.M{"email": in.Email}).Decode(&existing)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}

	hashedPassword, err := HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
	if _, err := collection.InsertOne(context.TODO(), user); err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// LoginUser authenticates an end user and returns a signed token.
func LoginUser(email, password string) (string, models.User, error) {
	collection := db.GetCollection("users")

	var user models.User
	err := collection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		return "", models.User{}, ErrUserNotFound
	}

	if !VerifyPassword(password, user.Password) {
		return "", models.User{}, ErrWrongPassword
	}

	token, err := GenerateJWT(user.ID.Hex(), userJWTSecret)
	if err != nil {
		return "", models.User{}, err
	}
	user.Password = ""
	return token, user, nil
}

// SignupAdmin registers a course-managing admin.
func SignupAdmin(in SignupInput) (models.Admin, error) {
	collection := db.GetCollection("admins")

	var existing models.Admin
	err := collection.FindOne(context.TODO(), bson.M{"email": in.Email}).Decode(&existing)
	if err == nil {
		return models.Admin{}, ErrEmailTaken
	}

	hashedPassword, err := HashPassword(in.Password)
	if err != nil {
		return models.Admin{}, err
	}

	admin := models.Admin{
		ID:        primitive.NewObjectID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
	if _, err := collection.InsertOne(context.TODO(), admin); err != nil {
		return models.Admin{}, err
	}
	admin.Password = ""
	return admin, nil
}

// LoginAdmin authenticates an admin against the admins collection, signed
// with the admin secret.
func LoginAdmin(email, password string) (string, models.Admin, error) {
	collection := db.GetCollection("admins")

	var admin models.Admin
	err := collection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&admin)
	if err != nil {
		return "", models.Admin{}, ErrUserNotFound
	}

	if !VerifyPassword(password, admin.Password) {
		return "", models.Admin{}, ErrWrongPassword
	}

	token, err := GenerateJWT(admin.ID.Hex(), adminJWTSecret)
	if err != nil {
		return "", models.Admin{}, err
	}
	admin.Password = ""
	return token, admin, nil
}

package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plain password")
	}
	if !VerifyPassword("password123", hash) {
		t.Error("correct password did not verify")
	}
	if VerifyPassword("password124", hash) {
		t.Error("wrong password verified")
	}
}

func TestGenerateJWTCarriesIDAndExpiry(t *testing.T) {
	tokenString, err := GenerateJWT("abc123", "testsecret")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("testsecret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not parse as valid: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["id"] != "abc123" {
		t.Errorf("expected id claim abc123, got %v", claims["id"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("missing expiration: %v", err)
	}
	until := time.Until(exp.Time)
	if until < 23*time.Hour || until > 25*time.Hour {
		t.Errorf("expected ~24h expiry, got %v", until)
	}
}

func TestGenerateJWTRejectsWrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT("abc123", "usersecret")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("adminsecret"), nil
	})
	if err == nil && token.Valid {
		t.Error("token signed with the user secret validated under the admin secret")
	}
}

func TestValidateSignup(t *testing.T) {
	valid := SignupInput{
		FirstName: "John",
		LastName:  "Carter",
		Email:     "john@example.com",
		Password:  "password123",
	}
	if msgs := ValidateSignup(valid); msgs != nil {
		t.Errorf("valid input rejected: %v", msgs)
	}

	short := valid
	short.Password = "short1"
	msgs := ValidateSignup(short)
	if len(msgs) != 1 || msgs[0] != "Password length should be greater than 7" {
		t.Errorf("expected password length message, got %v", msgs)
	}

	badEmail := valid
	badEmail.Email = "not-an-email"
	msgs = ValidateSignup(badEmail)
	if len(msgs) != 1 || msgs[0] != "Enter valid Email" {
		t.Errorf("expected email message, got %v", msgs)
	}

	shortName := valid
	shortName.FirstName = "Jo"
	msgs = ValidateSignup(shortName)
	if len(msgs) != 1 || msgs[0] != "FirstName should be minimum 3 char long" {
		t.Errorf("expected first name message, got %v", msgs)
	}

	empty := SignupInput{}
	if msgs := ValidateSignup(empty); len(msgs) != 4 {
		t.Errorf("expected 4 messages for empty input, got %v", msgs)
	}
}

package services

import (
	"errors"
	"fmt"
	"testing"
)

func TestInternalErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: failed to save course: %v", ErrInternal, errors.New("write conflict"))
	if !errors.Is(wrapped, ErrInternal) {
		t.Error("wrapped persistence failure does not match ErrInternal")
	}

	// Client-class errors must not be mistaken for internal ones
	for _, err := range []error{
		ErrCourseNotFound,
		ErrNotOwner,
		ErrAlreadyPurchased,
		errors.New("all fields are required"),
	} {
		if errors.Is(err, ErrInternal) {
			t.Errorf("%v classified as internal", err)
		}
	}
}

package services

import "errors"

var (
	ErrEmailTaken       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrCourseNotFound   = errors.New("course not found")
	ErrNotOwner         = errors.New("created by another admin")
	ErrAlreadyPurchased = errors.New("user has already purchased this course")
	ErrBadSignature     = errors.New("invalid payment signature")

	// ErrInternal marks unexpected persistence failures so handlers can
	// answer 500 instead of echoing them as client errors.
	ErrInternal = errors.New("unexpected internal error")
)

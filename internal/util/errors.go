package util

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPhoneRegistered     = errors.New("phone number already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrAssessmentCompleted = errors.New("assessment already submitted")
	ErrJobNotFound         = errors.New("job not found")
	ErrJobNotOpen          = errors.New("job is not open for assignment")
	ErrCategoryExists      = errors.New("trade category already exists")
	ErrCategoryNotFound    = errors.New("trade category not found")
)

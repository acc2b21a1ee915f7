package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrCourseNotFound    = errors.New("course not found")
	ErrAlreadyEnrolled   = errors.New("already enrolled")
	ErrEmptyOrder        = errors.New("no courses provided")
	ErrMissingFields     = errors.New("payment verification failed")
	ErrMailSend          = errors.New("could not send email")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrGateway           = errors.New("order initiation failed")
	ErrInvalidOrExpired  = errors.New("invalid or expired token")
	ErrPasswordMismatch  = errors.New("passwords do not match")
)

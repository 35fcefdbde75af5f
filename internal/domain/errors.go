package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyTaken  = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBanned         = errors.New("user is banned")
	ErrTokenRevoked       = errors.New("token revoked")

	ErrPropertyNotFound = errors.New("property not found")

	ErrRoommateProfileNotFound = errors.New("roommate profile not found")
	ErrRoommateProfileExists   = errors.New("active roommate profile already exists")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists")

	ErrNotificationNotFound = errors.New("notification not found")

	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

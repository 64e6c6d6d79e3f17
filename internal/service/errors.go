package service

import "errors"

var (
	// ErrInvalidInput wraps every validation failure; the validator's cause
	// stays reachable through errors.Is.
	ErrInvalidInput = errors.New("invalid input")
	ErrWrongSecret  = errors.New("wrong secret")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoWishlistImage  = errors.New("wishlist goal has no image")
	ErrUnsupportedImage = errors.New("wishlist image cannot be decoded")

	ErrNotLoggedIn = errors.New("not logged in")
)

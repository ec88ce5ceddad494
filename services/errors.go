package services

import "errors"

var (
	// ErrTourNotFound is returned when the referenced tour does not exist.
	ErrTourNotFound = errors.New("tour not found")
	// ErrTagNotFound is returned when a submitted tag id does not resolve.
	ErrTagNotFound = errors.New("tag not found")
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrReactionNotFound is returned when the referenced reaction does not exist.
	ErrReactionNotFound = errors.New("reaction not found")
	// ErrForbidden is returned when the acting user may not touch the record.
	ErrForbidden = errors.New("forbidden")
	// ErrLoginTaken is returned when registering or renaming to an existing login.
	ErrLoginTaken = errors.New("login already taken")
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrEmptyCredentials is returned when login or password is empty.
	ErrEmptyCredentials = errors.New("login and password must not be empty")
	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTagExists is returned when creating a tag whose name is taken.
	ErrTagExists = errors.New("tag already exists")
)

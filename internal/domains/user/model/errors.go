package model

import "mader-backend/internal/shared/apperror"

var (
	// Not Found
	ErrUserNotFound = apperror.NotFound("User not found")

	// Conflict
	ErrUsernameExists = apperror.Conflict("Username already exists")
	ErrEmailExists    = apperror.Conflict("Email already exists")
	ErrUserConflict   = apperror.Conflict("User already exists")

	// Authentication
	ErrIncorrectCredentials = apperror.Unauthorized("Incorrect email or password")
	ErrCouldNotValidate     = apperror.Unauthorized("Could not validate credentials")
	ErrNotAuthenticated     = apperror.Unauthorized("Not authenticated")
	ErrTooManyAttempts      = apperror.TooManyRequests("Too many login attempts, please try again later")

	// Authorization
	ErrNotEnoughPermissions = apperror.Forbidden("Not enough permissions")
)

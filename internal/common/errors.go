// Package common holds sentinel errors shared between layers.
// Repositories, services, and the HTTP layer compare against these
// with errors.Is and map them to transport responses exactly once.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// auth-specific errors
	ErrorInvalidToken = errors.New("invalid token")
)

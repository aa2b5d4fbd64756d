package profile

import (
	"errors"
	"fmt"
)

// Errors surfaced by the AI operations. None of them touch stored documents.
var (
	// ErrMissingCredential means no API key is configured.
	ErrMissingCredential = errors.New("API key is missing")

	// ErrNoImageReturned means the image service answered without an image part.
	ErrNoImageReturned = errors.New("no image returned from the image service")

	// ErrEmptyResult means the text service answered without any text.
	ErrEmptyResult = errors.New("no bio generated")

	// ErrVideoNotEditable is returned when an AI edit targets a video post.
	ErrVideoNotEditable = errors.New("video media cannot be edited")

	// ErrPostNotFound is returned by editor flows that need an existing post.
	ErrPostNotFound = errors.New("post not found")

	// ErrMediaNotFound is returned by a MediaVault for an unknown id.
	ErrMediaNotFound = errors.New("media not found")
)

// ServiceError wraps a transport or service-side failure of a remote call.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: service call failed: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

package service

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid analysis request")
	ErrSubmissionInProgress = errors.New("an analysis is already in progress for this session")
	ErrSessionNotFound      = errors.New("session not found")
	ErrNoResult             = errors.New("no analysis result yet")
)

package repository

import (
	"errors"
	"net/http"
)

// ErrRequestFailed matches every *RequestFailure via errors.Is.
var ErrRequestFailed = errors.New("request failed")

// Operation names a repository call.
type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

var failureMessages = map[Operation]string{
	OpList:   "Failed to fetch items",
	OpGet:    "Failed to fetch item",
	OpCreate: "Failed to create item",
	OpUpdate: "Failed to update item",
	OpDelete: "Failed to delete item",
}

// RequestFailure is the single error kind returned by the repository.
// Error() only carries the fixed per-operation message; server detail stays in Err.
type RequestFailure struct {
	Op         Operation
	Message    string
	StatusCode int // 0 when no response was received
	Err        error
}

// NewRequestFailure builds the failure for op with its fixed message.
func NewRequestFailure(op Operation, statusCode int, err error) *RequestFailure {
	return &RequestFailure{
		Op:         op,
		Message:    failureMessages[op],
		StatusCode: statusCode,
		Err:        err,
	}
}

func (e *RequestFailure) Error() string {
	return e.Message
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

func (e *RequestFailure) Is(target error) bool {
	return target == ErrRequestFailed
}

// IsNotFound reports whether err is a failure caused by a 404 response.
func IsNotFound(err error) bool {
	var rf *RequestFailure
	return errors.As(err, &rf) && rf.StatusCode == http.StatusNotFound
}

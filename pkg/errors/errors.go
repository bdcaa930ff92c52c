package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeSource represents network/HTTP failures while fetching a source page
	ErrorTypeSource ErrorType = "source_unreachable"
	// ErrorTypeRecordNotFound represents a missing record file
	ErrorTypeRecordNotFound ErrorType = "record_not_found"
	// ErrorTypeRecordEmpty represents a record that holds no items yet
	ErrorTypeRecordEmpty ErrorType = "record_empty"
	// ErrorTypeRecord represents a malformed or unreadable record
	ErrorTypeRecord ErrorType = "record"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeCache represents page cache errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// TrackerError represents an error raised by the tracker core.
// Subject names what failed: a URL for source errors, a file path for
// record errors, an item name for store errors.
type TrackerError struct {
	Type    ErrorType
	Subject string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *TrackerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Subject, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Subject, e.Message)
}

// Unwrap returns the underlying error
func (e *TrackerError) Unwrap() error {
	return e.Err
}

// New creates a new TrackerError
func New(errType ErrorType, subject, message string, err error) *TrackerError {
	return &TrackerError{
		Type:    errType,
		Subject: subject,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewSource creates a new source-unreachable error for a URL
func NewSource(url, message string, err error) *TrackerError {
	return New(ErrorTypeSource, url, message, err)
}

// NewRecordNotFound creates a new missing-record error for a file path
func NewRecordNotFound(path string, err error) *TrackerError {
	return New(ErrorTypeRecordNotFound, path, "record file not found", err)
}

// NewRecordEmpty creates a new empty-record error for a file path
func NewRecordEmpty(path string) *TrackerError {
	return New(ErrorTypeRecordEmpty, path, "record holds no items", nil)
}

// NewRecord creates a new record error
func NewRecord(path, message string, err error) *TrackerError {
	return New(ErrorTypeRecord, path, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(subject, message string, err error) *TrackerError {
	return New(ErrorTypePublisher, subject, message, err)
}

// NewCache creates a new cache error
func NewCache(subject, message string, err error) *TrackerError {
	return New(ErrorTypeCache, subject, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *TrackerError {
	return New(ErrorTypeConfiguration, "", message, err)
}

func isType(err error, t ErrorType) bool {
	var te *TrackerError
	if errors.As(err, &te) {
		return te.Type == t
	}
	return false
}

// IsSourceUnreachable reports whether err is a source-unreachable error
func IsSourceUnreachable(err error) bool {
	return isType(err, ErrorTypeSource)
}

// IsRecordNotFound reports whether err is a missing-record error
func IsRecordNotFound(err error) bool {
	return isType(err, ErrorTypeRecordNotFound)
}

// IsRecordEmpty reports whether err is an empty-record error
func IsRecordEmpty(err error) bool {
	return isType(err, ErrorTypeRecordEmpty)
}

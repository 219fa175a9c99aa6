package core

import (
	"errors"
	"fmt"
)

// ErrorCode classifies engine failures.
type ErrorCode string

const (
	CodeInvalidPlacement ErrorCode = "INVALID_PLACEMENT"
	CodeAlreadyPlaced    ErrorCode = "ALREADY_PLACED"
	CodeNotPlaced        ErrorCode = "NOT_PLACED"
	CodeRotationRejected ErrorCode = "ROTATION_REJECTED"
	CodeFlipRejected     ErrorCode = "FLIP_REJECTED"
	CodeUnknownShape     ErrorCode = "UNKNOWN_SHAPE"
	CodeNotPlaying       ErrorCode = "NOT_PLAYING"
	CodeNothingToUndo    ErrorCode = "NOTHING_TO_UNDO"
	CodeNoHint           ErrorCode = "NO_HINT"
)

// PlacementError is returned by ledger and session operations.
// All of them are recoverable and leave state unchanged.
type PlacementError struct {
	Code    ErrorCode
	PieceID ShapeID
	Message string
}

func (e *PlacementError) Error() string {
	switch {
	case e.PieceID != "" && e.Message != "":
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.PieceID, e.Message)
	case e.PieceID != "":
		return fmt.Sprintf("[%s] %s", e.Code, e.PieceID)
	case e.Message != "":
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	default:
		return fmt.Sprintf("[%s]", e.Code)
	}
}

// Is matches on Code so callers can use errors.Is against the sentinels.
func (e *PlacementError) Is(target error) bool {
	var t *PlacementError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrInvalidPlacement = &PlacementError{Code: CodeInvalidPlacement}
	ErrAlreadyPlaced    = &PlacementError{Code: CodeAlreadyPlaced}
	ErrNotPlaced        = &PlacementError{Code: CodeNotPlaced}
	ErrRotationRejected = &PlacementError{Code: CodeRotationRejected}
	ErrFlipRejected     = &PlacementError{Code: CodeFlipRejected}
	ErrUnknownShape     = &PlacementError{Code: CodeUnknownShape}
	ErrNotPlaying       = &PlacementError{Code: CodeNotPlaying}
	ErrNothingToUndo    = &PlacementError{Code: CodeNothingToUndo}
	ErrNoHint           = &PlacementError{Code: CodeNoHint}
)

func newPlacementError(code ErrorCode, id ShapeID, format string, args ...any) *PlacementError {
	return &PlacementError{Code: code, PieceID: id, Message: fmt.Sprintf(format, args...)}
}

// ErrInvalidDateTarget is the sentinel for out-of-range date components.
var ErrInvalidDateTarget = errors.New("invalid date target")

// DateError reports which date component was out of range.
// It is a boundary error: callers should fail fast rather than default.
type DateError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %s %d not in [%d,%d]", ErrInvalidDateTarget, e.Field, e.Value, e.Min, e.Max)
}

func (e *DateError) Unwrap() error {
	return ErrInvalidDateTarget
}

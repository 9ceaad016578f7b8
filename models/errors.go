package models

import (
	"errors"
	"fmt"
)

var (
	ErrIdempotencyConflict = errors.New("root already registered")
	ErrConfirmationTimeout = errors.New("transaction not confirmed within window")
	ErrInvalidTransition   = errors.New("invalid teleport status transition")
	ErrStaleRecord         = errors.New("teleport record changed concurrently")
	ErrNotFound            = errors.New("not found")
	ErrNotReady            = errors.New("not ready")
)

// TransientNetworkError wraps RPC and subscription failures that are retried
// by the component that hit them.
type TransientNetworkError struct {
	Op  string
	Err error
}

func (e *TransientNetworkError) Error() string {
	return fmt.Sprintf("transient network error during %s: %v", e.Op, e.Err)
}

func (e *TransientNetworkError) Unwrap() error {
	return e.Err
}

func IsTransient(err error) bool {
	var t *TransientNetworkError
	return errors.As(err, &t)
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type FatalSubmissionFailure struct {
	BatchID  string
	Attempts int64
	Err      error
}

func (e *FatalSubmissionFailure) Error() string {
	return fmt.Sprintf("batch %s submission failed after %d attempts: %v", e.BatchID, e.Attempts, e.Err)
}

func (e *FatalSubmissionFailure) Unwrap() error {
	return e.Err
}

type DuplicateInitiationError struct {
	BurnTxHash string
	ExistingID string
}

func (e *DuplicateInitiationError) Error() string {
	return fmt.Sprintf("teleport for burn tx %s already exists: %s", e.BurnTxHash, e.ExistingID)
}

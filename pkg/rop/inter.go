package rop

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/railway/pkg/rop/problem"
)

// Outcome is the value-agnostic view of a result. It lets results of
// different value types be aggregated or observed together.
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
	// Problem returns the failure description, nil on success
	Problem() *problem.Problem
	// Id identifies the outcome
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ValueProvider is an Outcome exposing its value.
type ValueProvider[T any] interface {
	Outcome
	Value() T
}

var (
	_ ValueProvider[int]   = Result[int]{}
	_ ValueProvider[[]int] = CollectionResult[int]{}
)

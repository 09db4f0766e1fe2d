package db

import "advisorqa/internal/store"

// Domain-level database error sentinels, shared with every store backend.
var (
	ErrAnswerNotFound    = store.ErrAnswerNotFound
	ErrDuplicateAnswer   = store.ErrDuplicateAnswer
	ErrQuestionNotFound  = store.ErrQuestionNotFound
	ErrInvalidTransition = store.ErrInvalidTransition
)

// uniqueViolation is the Postgres error code for a unique constraint failure.
const uniqueViolation = "23505"

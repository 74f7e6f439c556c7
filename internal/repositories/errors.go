package repositories

import "errors"

// Sentinel errors shared by the stores. ErrDuplicateEdge is the conflict
// signal the toggle engine absorbs: it means the store's uniqueness
// constraint, not application logic, decided the edge already exists.
var (
	ErrDuplicateEdge = errors.New("edge already exists")
	ErrEdgeNotFound  = errors.New("edge not found")
	ErrNotFound      = errors.New("record not found")
)

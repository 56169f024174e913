// Package storage coordinates access to the volatile in-memory stores.
// All application state lives in process memory and is lost on restart.
package storage

import "sync"

// Memory is the process-wide guard shared by every domain service.
//
// The repositories are plain map holders with no locking of their own.
// A service holds this lock for the full length of one operation, so
// sequences that touch several stores (refreshing a proposal's tally
// after a vote, cascading votes when a proposal is deleted) can never
// interleave with another operation.
type Memory struct {
	sync.RWMutex
}

// NewMemory creates the shared store guard.
func NewMemory() *Memory {
	return &Memory{}
}

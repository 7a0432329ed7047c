// Package domain holds the storage-agnostic errors shared by every
// repository implementation.
package domain

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

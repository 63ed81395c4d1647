package domain

import "github.com/google/uuid"

// IDSource hands out entity identifiers. Identifiers are never reused.
type IDSource interface {
	NewID() uuid.UUID
}

// IDSourceFunc adapts a plain function to IDSource.
type IDSourceFunc func() uuid.UUID

func (f IDSourceFunc) NewID() uuid.UUID { return f() }

// RandomIDs draws version 4 UUIDs from the process-wide random source.
var RandomIDs IDSource = IDSourceFunc(uuid.New)

package ident

import "github.com/google/uuid"

// Generator produces identifiers for newly created records. It is
// injected into every creation path so tests can pin ids.
type Generator interface {
	NewID() string
}

// UUID is the production generator.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Func adapts a plain function to the Generator interface.
type Func func() string

func (f Func) NewID() string { return f() }

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates no candidate location held the requested file.
	ErrNotFound = errors.New("not found")

	// ErrExplicitPathNotFound indicates a path given on the command line does not exist.
	ErrExplicitPathNotFound = errors.New("not found at specified path")

	// ErrValidation indicates package configurations failed validation.
	ErrValidation = errors.New("package structure validation failed")
)

// ExplicitPathError reports an explicitly requested file that does not exist.
// Explicit paths never fall through to the other search strategies.
type ExplicitPathError struct {
	Kind Kind
	Path string
}

func (e *ExplicitPathError) Error() string {
	return fmt.Sprintf("%s not found at specified path: %s", e.Kind.label(), e.Path)
}

func (e *ExplicitPathError) Unwrap() error { return ErrExplicitPathNotFound }

// Problem is one validation finding for a package configuration entry.
type Problem struct {
	Package string
	Message string
}

func (p Problem) String() string {
	return p.Package + ": " + p.Message
}

// ValidationError aggregates every Problem found in one validation pass.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		b.WriteString(p.String())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal parse error")

	// ErrParse wraps every build failure: scanner errors, event
	// sequences that produce no root, and event sequences whose
	// replay would break a tree invariant.
	ErrParse = errors.New("parse error")

	ErrNoRoot = fmt.Errorf("%w: no root element", ErrParse)
)

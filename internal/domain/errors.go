package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoCalls      = errors.New("no calls made yet")
	ErrNoFavourites = errors.New("no favourites yet")
	ErrNoRecent     = errors.New("no recent contacts")
)

// ParseError reports a persisted line that could not be decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

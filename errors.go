package tile

import (
	"errors"
)

var (
	// ErrFileNotFound is returned when a map file cannot be opened
	ErrFileNotFound = errors.New("file not found")

	// ErrMalformedDocument is returned when a map is missing it's root element
	// or a required attribute, or holds data we can't read.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidTileID is returned when a tile refers to a frame the atlas doesn't have
	ErrInvalidTileID = errors.New("invalid tile id")
)

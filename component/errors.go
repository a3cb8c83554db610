package component

import (
	"errors"
)

var (
	// the request passed binding but misses data the component needs
	ErrBadRequest = errors.New("bad request")
)

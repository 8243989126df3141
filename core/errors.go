package core

import "errors"

// ErrUnknownEntity marks a lookup of a destroyed or never-issued handle
var ErrUnknownEntity = errors.New("unknown entity")

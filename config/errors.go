package config

import "errors"

// Load-time validation errors (§6, §7: configuration errors are fatal at
// machine-build time, not runtime conditions).
var (
	ErrMisaligned   = errors.New("config: size/offset must be a multiple of 4096")
	ErrMissingField = errors.New("config: required field is empty")
	ErrUnknownType  = errors.New("config: unrecognized region/controller type")
)

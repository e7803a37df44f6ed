package scan

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid IPv4 address")
	ErrInvalidPort    = errors.New("invalid port number")
	ErrInvalidRange   = errors.New("invalid port range")
)

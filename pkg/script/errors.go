package script

import "errors"

var (
	// ErrUnknownCommand is returned for a command word the runner does not know
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArgCount is returned when a command has the wrong number of arguments
	ErrArgCount = errors.New("wrong number of arguments")
	// ErrUnexpectedFlag is returned for a flag the command does not take
	ErrUnexpectedFlag = errors.New("unexpected flag")
	// ErrBadExtent is returned for a negative or fractional pixel size
	ErrBadExtent = errors.New("size must be a non-negative whole number")
)

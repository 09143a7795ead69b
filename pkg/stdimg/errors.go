package stdimg

import "errors"

var (
	// ErrUnknownCommand is returned by ApplyCommand for names missing from Commands.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNilImage is returned when a command is applied to a nil image.
	ErrNilImage = errors.New("source image is nil")
	// ErrInvalidArgument wraps every argument parsing or range failure.
	ErrInvalidArgument = errors.New("invalid argument")
)

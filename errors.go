package ringbuf

import "github.com/pkg/errors"

// ErrInvalidCapacity is returned when a capacity argument violates a
// precondition: a factory capacity below 1, or an Extend target below the
// current maxLength. Match with errors.Is.
var ErrInvalidCapacity = errors.New("ringbuf: invalid capacity")

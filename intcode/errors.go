package intcode

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	ErrorCapacityExceeded ErrorKind = iota
	ErrorUnknownOpcode
	ErrorInvalidParameterMode
	ErrorOutOfRangeAddress
)

var (
	ErrCapacityExceeded     = errors.New("program too big for memory")
	ErrUnknownOpcode        = errors.New("unknown opcode")
	ErrInvalidParameterMode = errors.New("invalid parameter mode")
	ErrOutOfRangeAddress    = errors.New("address out of range")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorCapacityExceeded:
		return ErrCapacityExceeded
	case ErrorUnknownOpcode:
		return ErrUnknownOpcode
	case ErrorInvalidParameterMode:
		return ErrInvalidParameterMode
	case ErrorOutOfRangeAddress:
		return ErrOutOfRangeAddress
	}
	return nil
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "unknown error"
}

// Error is a fatal machine condition. Pointer is the instruction pointer at
// the time of failure, or -1 when no instruction was executing.
type Error struct {
	Kind    ErrorKind
	Pointer int64
	Detail  string
}

func (e *Error) Error() string {
	if e.Pointer < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s at &%d: %s", e.Kind, e.Pointer, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

func newError(kind ErrorKind, pointer int64, format string, args ...any) error {
	return &Error{
		Kind:    kind,
		Pointer: pointer,
		Detail:  fmt.Sprintf(format, args...),
	}
}

// atPointer stamps an error raised below the instruction level with the
// pointer of the instruction that caused it.
func atPointer(err error, pointer int64) error {
	var merr *Error
	if errors.As(err, &merr) && merr.Pointer < 0 {
		stamped := *merr
		stamped.Pointer = pointer
		return &stamped
	}
	return err
}

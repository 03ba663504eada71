package loader

import (
	"github.com/ezrec/hwbits/translate"
)

var f = translate.From

var (
	ErrClass   = translate.Error("unsupported ELF class")
	ErrSegment = translate.Error("segment file size exceeds memory size")
)

// ErrLoad is the context of a failed program load.
type ErrLoad struct {
	Segment int
	Err     error
}

func (err *ErrLoad) Error() string {
	return f("loader: segment %v: %v", err.Segment, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

package memory

import (
	"github.com/ezrec/hwbits/translate"
)

var f = translate.From

var (
	ErrAddress = translate.Error("address out of range")
	ErrWidth   = translate.Error("access width is not 8, 16, 32 or 64")
	ErrImage   = translate.Error("invalid memory image")
)

// ErrAccess is the context of a failed memory access.
type ErrAccess struct {
	Op   string
	Addr uint64
	Err  error
}

func (err *ErrAccess) Error() string {
	return f("memory: %v 0x%08x: %v", err.Op, err.Addr, err.Err)
}

func (err *ErrAccess) Unwrap() error {
	return err.Err
}

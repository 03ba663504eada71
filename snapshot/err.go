package snapshot

import (
	"github.com/ezrec/hwbits/translate"
)

var f = translate.From

// ErrVersion is returned for a snapshot an incompatible release wrote.
type ErrVersion struct {
	Have string
	Want string
}

func (err *ErrVersion) Error() string {
	return f("snapshot: version %v is not compatible with %v", err.Have, err.Want)
}

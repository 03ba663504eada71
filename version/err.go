package version

import (
	"github.com/ezrec/hwbits/translate"
)

var (
	ErrVersion = translate.Error("invalid semantic version")
)

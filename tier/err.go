package tier

import (
	"github.com/ezrec/hwbits/translate"
)

var (
	ErrWidthZero        = translate.Error("zero width")
	ErrWidthTier        = translate.Error("width exceeds storage register")
	ErrNegativeUnsigned = translate.Error("negative value in unsigned infinite precision")
)

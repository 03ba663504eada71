package bitvec

import (
	"encoding/binary"

	"github.com/ezrec/hwbits/tier"
)

// checkNative panics unless width is a native byte width.
func checkNative(op string, width uint) {
	switch width {
	case 8, 16, 32, tier.WORD_LIMIT:
	default:
		fatal(op, ErrWidthNative)
	}
}

// PutBytes writes the bit pattern of an 8, 16, 32 or 64 bit value into buf.
func (b Bits) PutBytes(order binary.ByteOrder, buf []byte) {
	checkNative("bytes", b.width)

	v := b.low64()
	switch b.width {
	case 8:
		buf[0] = uint8(v)
	case 16:
		order.PutUint16(buf, uint16(v))
	case 32:
		order.PutUint32(buf, uint32(v))
	default:
		order.PutUint64(buf, v)
	}
}

// Bytes returns the bit pattern of an 8, 16, 32 or 64 bit value.
func (b Bits) Bytes(order binary.ByteOrder) (buf []byte) {
	checkNative("bytes", b.width)
	buf = make([]byte, b.width/8)
	b.PutBytes(order, buf)
	return
}

// FromBytes reads a value of an 8, 16, 32 or 64 bit format from buf.
func FromBytes(fm Format, order binary.ByteOrder, buf []byte) Bits {
	checkNative("bytes", fm.Width)

	var v uint64
	switch fm.Width {
	case 8:
		v = uint64(buf[0])
	case 16:
		v = uint64(order.Uint16(buf))
	case 32:
		v = uint64(order.Uint32(buf))
	default:
		v = order.Uint64(buf)
	}

	return fm.Of(v)
}

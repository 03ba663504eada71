package snapshot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hwbits/bitvec"
	"github.com/ezrec/hwbits/version"
)

func TestSnapshotRoundTrip(t *testing.T) {
	assert := assert.New(t)

	snap := New()
	snap.Set("pc", bitvec.U(32).Of(0x1000))
	snap.Set("acc", bitvec.S(12).OfInt(-3))
	snap.Set("bus", bitvec.MustXBits("8'h1x_ux"))
	snap.Set("wide", bitvec.U(200).Ones())
	snap.Set("dyn", bitvec.NewDynBits(16, bitvec.U(4).Of(5)))

	assert.Equal([]string{"acc", "bus", "dyn", "pc", "wide"}, snap.Names())

	var buf bytes.Buffer
	assert.NoError(snap.Save(&buf))
	assert.Contains(buf.String(), "version: v1.0.0")
	assert.Contains(buf.String(), "32'h1000_ux")

	other, err := Load(&buf)
	assert.NoError(err)
	assert.Equal(snap.Names(), other.Names())

	for _, name := range snap.Names() {
		assert.True(snap.Registers[name].Same(other.Registers[name]), name)
	}

	acc, err := other.Registers["acc"].Int64()
	assert.NoError(err)
	assert.Equal(int64(-3), acc)
	assert.False(other.Registers["bus"].IsDefined())
}

func TestSnapshotVersion(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		text string
		ok   bool
	}{
		{"version: v1.0.0\nregisters:\n  a: 4'h5\n", true},
		{"version: 1.0\n", true},
		{"version: v2.0.0\nregisters: {}\n", false},
		{"version: v0.1.0\n", false},
		{"registers:\n  a: 4'h5\n", false},
	}

	for _, entry := range table {
		snap, err := Load(strings.NewReader(entry.text))
		if entry.ok {
			assert.NoError(err, entry.text)
			assert.NotNil(snap.Registers)
		} else {
			var verr *ErrVersion
			assert.True(errors.As(err, &verr), entry.text)
			assert.Equal(version.CURRENT, verr.Want)
		}
	}
}

func TestSnapshotInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(strings.NewReader("version: v1.0.0\nregisters:\n  a: 4'hzz\n"))
	assert.ErrorIs(err, bitvec.ErrLiteralDigit)

	_, err = Load(strings.NewReader("version: v1.0.0\nregisters:\n  a: [1, 2]\n"))
	assert.ErrorIs(err, bitvec.ErrLiteralSyntax)
}

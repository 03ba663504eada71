// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package snapshot saves and restores named register values as YAML.
package snapshot

import (
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/hwbits/bitvec"
	"github.com/ezrec/hwbits/version"
)

// Snapshot is a set of named register values.
type Snapshot struct {
	Version   string                  `yaml:"version"`
	Registers map[string]bitvec.XBits `yaml:"registers"`
}

// New returns an empty snapshot of the current version.
func New() *Snapshot {
	return &Snapshot{
		Version:   version.CURRENT,
		Registers: map[string]bitvec.XBits{},
	}
}

// Set a register.
func (snap *Snapshot) Set(name string, v bitvec.Vector) {
	if snap.Registers == nil {
		snap.Registers = map[string]bitvec.XBits{}
	}

	snap.Registers[name] = bitvec.NewXBits(v.Value(), v.Mask())
}

// Names of the registers, sorted.
func (snap *Snapshot) Names() []string {
	return slices.Sorted(maps.Keys(snap.Registers))
}

// Save the snapshot as YAML.
func (snap *Snapshot) Save(file io.Writer) (err error) {
	if snap.Version == "" {
		snap.Version = version.CURRENT
	}

	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)

	err = enc.Encode(snap)
	if err != nil {
		return
	}

	err = enc.Close()
	return
}

// Load a snapshot, rejecting versions that are not compatible with this
// release.
func Load(file io.Reader) (snap *Snapshot, err error) {
	var s Snapshot

	err = yaml.NewDecoder(file).Decode(&s)
	if err != nil {
		return
	}

	if !version.Compatible(s.Version, version.CURRENT) {
		err = &ErrVersion{Have: s.Version, Want: version.CURRENT}
		return
	}

	if s.Registers == nil {
		s.Registers = map[string]bitvec.XBits{}
	}

	snap = &s
	return
}

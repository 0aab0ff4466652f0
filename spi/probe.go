// SPDX-License-Identifier: EPL-2.0

package spi

import (
	"errors"
	"io"
)

// Probe is the view of an input a reader provider hands to its parser.
// Offsets are relative to where the input was positioned when the probe was
// created. Read and seek errors other than end of input are recorded, so a
// provider can tell a broken input apart from bytes it does not understand.
type Probe struct {
	rs   io.ReadSeeker
	base int64
	err  error
}

// NewProbe starts a probe at the current position of rs.
func NewProbe(rs io.ReadSeeker) (*Probe, error) {
	base, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	return &Probe{rs: rs, base: base}, nil
}

func (p *Probe) Read(b []byte) (int, error) {
	n, err := p.rs.Read(b)
	p.record(err)
	return n, err
}

func (p *Probe) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekStart {
		offset += p.base
	}

	abs, err := p.rs.Seek(offset, whence)
	p.record(err)
	if err != nil {
		return 0, err
	}
	return abs - p.base, nil
}

func (p *Probe) record(err error) {
	if err == nil || p.err != nil {
		return
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return
	}
	p.err = err
}

// Err returns the first I/O error seen, if any.
func (p *Probe) Err() error { return p.err }

// Classify turns a parser error into an outcome: Fail when the probe saw an
// I/O error, Reject otherwise.
func Classify[V any](p *Probe, err error) Outcome[V] {
	if p.err != nil {
		return Fail[V](p.err)
	}
	if err == nil {
		return Reject[V]("not recognised")
	}
	return Reject[V](err.Error())
}

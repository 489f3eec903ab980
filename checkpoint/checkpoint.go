// Package checkpoint defines the on-disk byte layout for saving and
// loading a body population, and read/writes a body.Store against it.
package checkpoint

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/robmdunn/nbody/body"
	"github.com/robmdunn/nbody/spatial/r3"
)

// version is the current on-disk codec version.
const version uint32 = 1

// magic identifies a checkpoint file.
var magic = [4]byte{'N', 'B', 'D', 'Y'}

var (
	// ErrBadMagic is returned when the input does not begin with the
	// checkpoint magic bytes.
	ErrBadMagic = errors.New("checkpoint: bad magic")
	// ErrVersionMismatch is returned when the input's version tag does not
	// match the version this package reads and writes.
	ErrVersionMismatch = errors.New("checkpoint: version mismatch")
	// ErrTruncatedRecord is returned when the input ends before a complete
	// header or body record has been read.
	ErrTruncatedRecord = errors.New("checkpoint: truncated record")
)

// header precedes the body records in a checkpoint file.
//
//	0 - 3   magic        ('N','B','D','Y')
//	4 - 7   version      (uint32)
//	8 - 15  body count N (uint64)
type header struct {
	Magic   [4]byte
	Version uint32
	N       uint64
}

const headerSize = 4 + 4 + 8

// recordSize is the per-body payload size for the 3D layout: mass plus
// position and velocity, each a 3-vector of float64.
const recordSize = 8 + 3*8 + 3*8

// Write encodes every body in s to w in checkpoint format, little-endian.
func Write(w io.Writer, s *body.Store) error {
	n := s.Len()
	buf := make([]byte, 0, headerSize+n*recordSize)
	bw := bytes.NewBuffer(buf)

	if err := binary.Write(bw, binary.LittleEndian, header{Magic: magic, Version: version, N: uint64(n)}); err != nil {
		return err
	}

	var rec [recordSize]byte
	for i := 0; i < n; i++ {
		pos, vel, mass := s.Pos(i), s.Vel(i), s.Mass(i)
		putRecord(rec[:], mass, pos, vel)
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}

	_, err := w.Write(bw.Bytes())
	return err
}

// Read decodes a checkpoint from r and returns a freshly constructed
// body.Store. Read returns ErrBadMagic, ErrVersionMismatch, or
// ErrTruncatedRecord on a malformed input; on error the caller's existing
// body store (if any) is left untouched, since Read never mutates an
// existing Store in place.
func Read(r io.Reader) (*body.Store, error) {
	hdr := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, ErrTruncatedRecord
	}

	var h header
	if err := binary.Read(bytes.NewReader(hdr), binary.LittleEndian, &h); err != nil {
		return nil, ErrTruncatedRecord
	}
	if h.Magic != magic {
		return nil, ErrBadMagic
	}
	if h.Version != version {
		return nil, ErrVersionMismatch
	}

	store := body.NewStore(int(h.N))
	rec := make([]byte, recordSize)
	for i := uint64(0); i < h.N; i++ {
		if _, err := io.ReadFull(r, rec); err != nil {
			return nil, ErrTruncatedRecord
		}
		mass, pos, vel := parseRecord(rec)
		store.Set(int(i), mass, pos, vel)
	}
	return store, nil
}

func putRecord(b []byte, mass float64, pos, vel r3.Vec) {
	binary.LittleEndian.PutUint64(b[0:8], math.Float64bits(mass))
	binary.LittleEndian.PutUint64(b[8:16], math.Float64bits(pos.X))
	binary.LittleEndian.PutUint64(b[16:24], math.Float64bits(pos.Y))
	binary.LittleEndian.PutUint64(b[24:32], math.Float64bits(pos.Z))
	binary.LittleEndian.PutUint64(b[32:40], math.Float64bits(vel.X))
	binary.LittleEndian.PutUint64(b[40:48], math.Float64bits(vel.Y))
	binary.LittleEndian.PutUint64(b[48:56], math.Float64bits(vel.Z))
}

func parseRecord(b []byte) (mass float64, pos, vel r3.Vec) {
	mass = math.Float64frombits(binary.LittleEndian.Uint64(b[0:8]))
	pos.X = math.Float64frombits(binary.LittleEndian.Uint64(b[8:16]))
	pos.Y = math.Float64frombits(binary.LittleEndian.Uint64(b[16:24]))
	pos.Z = math.Float64frombits(binary.LittleEndian.Uint64(b[24:32]))
	vel.X = math.Float64frombits(binary.LittleEndian.Uint64(b[32:40]))
	vel.Y = math.Float64frombits(binary.LittleEndian.Uint64(b[40:48]))
	vel.Z = math.Float64frombits(binary.LittleEndian.Uint64(b[48:56]))
	return mass, pos, vel
}

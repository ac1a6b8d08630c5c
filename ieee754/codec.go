package ieee754

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ryanmaguire/libtmpl-sub005/config"
)

var (
	// ErrShortBuffer is returned when a buffer is smaller than the
	// storage width of the layout.
	ErrShortBuffer = errors.New("buffer too short for layout")

	// ErrLayout is returned for config.Unknown and out-of-range layouts.
	ErrLayout = errors.New("unsupported layout")
)

func byteOrder(l config.FloatLayout) binary.ByteOrder {
	if l.BigEndian() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// PutRaw writes the storage image of r in layout l into the first
// l.Width() bytes of b. Padding bytes are cleared. Binary32 is written
// little-endian.
func PutRaw(b []byte, l config.FloatLayout, r Raw) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %v", ErrLayout, l)
	}
	w := l.Width()
	if len(b) < w {
		return fmt.Errorf("%w: %s needs %d bytes, have %d",
			ErrShortBuffer, l, w, len(b))
	}
	bo := byteOrder(l)
	switch l {
	case config.Binary32:
		bo.PutUint32(b, uint32(r.Lo))
	case config.Binary64LE, config.Binary64BE:
		bo.PutUint64(b, r.Lo)
	case config.Extended96LE, config.Extended128LE:
		bo.PutUint64(b, r.Lo)
		bo.PutUint16(b[8:], uint16(r.Hi))
		clear(b[10:w])
	case config.Extended96BE, config.Extended128BE:
		bo.PutUint16(b, uint16(r.Hi))
		clear(b[2 : w-8])
		bo.PutUint64(b[w-8:], r.Lo)
	case config.Quadruple128LE:
		bo.PutUint64(b, r.Lo)
		bo.PutUint64(b[8:], r.Hi)
	case config.Quadruple128BE:
		bo.PutUint64(b, r.Hi)
		bo.PutUint64(b[8:], r.Lo)
	case config.DoubleDouble128LE, config.DoubleDouble128BE:
		// The high component comes first in memory in both orders.
		bo.PutUint64(b, r.Hi)
		bo.PutUint64(b[8:], r.Lo)
	}
	return nil
}

// ReadRaw is the inverse of PutRaw. Padding bytes are ignored.
func ReadRaw(b []byte, l config.FloatLayout) (Raw, error) {
	if !l.Valid() {
		return Raw{}, fmt.Errorf("%w: %v", ErrLayout, l)
	}
	w := l.Width()
	if len(b) < w {
		return Raw{}, fmt.Errorf("%w: %s needs %d bytes, have %d",
			ErrShortBuffer, l, w, len(b))
	}
	bo := byteOrder(l)
	var r Raw
	switch l {
	case config.Binary32:
		r.Lo = uint64(bo.Uint32(b))
	case config.Binary64LE, config.Binary64BE:
		r.Lo = bo.Uint64(b)
	case config.Extended96LE, config.Extended128LE:
		r.Lo = bo.Uint64(b)
		r.Hi = uint64(bo.Uint16(b[8:]))
	case config.Extended96BE, config.Extended128BE:
		r.Hi = uint64(bo.Uint16(b))
		r.Lo = bo.Uint64(b[w-8:])
	case config.Quadruple128LE:
		r.Lo = bo.Uint64(b)
		r.Hi = bo.Uint64(b[8:])
	case config.Quadruple128BE:
		r.Hi = bo.Uint64(b)
		r.Lo = bo.Uint64(b[8:])
	case config.DoubleDouble128LE, config.DoubleDouble128BE:
		r.Hi = bo.Uint64(b)
		r.Lo = bo.Uint64(b[8:])
	}
	return r, nil
}

// AppendRaw appends the storage image of r in layout l to b.
func AppendRaw(b []byte, l config.FloatLayout, r Raw) ([]byte, error) {
	var tmp [16]byte
	if err := PutRaw(tmp[:], l, r); err != nil {
		return b, err
	}
	return append(b, tmp[:l.Width()]...), nil
}

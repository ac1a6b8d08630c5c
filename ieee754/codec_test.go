package ieee754

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ryanmaguire/libtmpl-sub005/config"
)

func TestCodecImages(t *testing.T) {
	one80 := MakeExtended(0, 16383, extIntBit).Raw()
	oneQ := MakeQuadruple(0, 16383, 0, 0).Raw()
	oneDD := DoubleDouble{1, 0x1p-60}.Raw()
	tests := []struct {
		l    config.FloatLayout
		r    Raw
		want []byte
	}{
		{config.Binary32, Float32Raw(1), []byte{0, 0, 0x80, 0x3F}},
		{config.Binary64LE, Float64Raw(1), []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}},
		{config.Binary64BE, Float64Raw(1), []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}},
		{config.Extended96LE, one80, []byte{
			0, 0, 0, 0, 0, 0, 0, 0x80, 0xFF, 0x3F, 0, 0}},
		{config.Extended96BE, one80, []byte{
			0x3F, 0xFF, 0, 0, 0x80, 0, 0, 0, 0, 0, 0, 0}},
		{config.Extended128LE, one80, []byte{
			0, 0, 0, 0, 0, 0, 0, 0x80, 0xFF, 0x3F, 0, 0, 0, 0, 0, 0}},
		{config.Extended128BE, one80, []byte{
			0x3F, 0xFF, 0, 0, 0, 0, 0, 0, 0x80, 0, 0, 0, 0, 0, 0, 0}},
		{config.Quadruple128LE, oneQ, []byte{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xFF, 0x3F}},
		{config.Quadruple128BE, oneQ, []byte{
			0x3F, 0xFF, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{config.DoubleDouble128LE, oneDD, []byte{
			0, 0, 0, 0, 0, 0, 0xF0, 0x3F, 0, 0, 0, 0, 0, 0, 0x30, 0x3C}},
		{config.DoubleDouble128BE, oneDD, []byte{
			0x3F, 0xF0, 0, 0, 0, 0, 0, 0, 0x3C, 0x30, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		// Dirty padding must be cleared.
		buf := bytes.Repeat([]byte{0xAA}, tt.l.Width())
		if err := PutRaw(buf, tt.l, tt.r); err != nil {
			t.Fatalf("ERR: %s: %v", tt.l, err)
		}
		if !bytes.Equal(buf, tt.want) {
			t.Fatalf("ERR: %s: % X, want % X", tt.l, buf, tt.want)
		}
		app, err := AppendRaw([]byte{1}, tt.l, tt.r)
		if err != nil || !bytes.Equal(app[1:], tt.want) || app[0] != 1 {
			t.Fatalf("ERR: %s: AppendRaw % X (%v)", tt.l, app, err)
		}
	}
}

func TestCodecErrors(t *testing.T) {
	var small [11]byte
	if err := PutRaw(small[:], config.Extended96LE, Raw{}); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("ERR: expected ErrShortBuffer, got %v", err)
	}
	if err := PutRaw(small[:], config.Quadruple128BE, Raw{}); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("ERR: expected ErrShortBuffer, got %v", err)
	}
	if _, err := ReadRaw(small[:4], config.Binary64LE); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("ERR: expected ErrShortBuffer, got %v", err)
	}
	if _, err := ReadRaw(small[:], config.Unknown); !errors.Is(err, ErrLayout) {
		t.Fatalf("ERR: expected ErrLayout, got %v", err)
	}
	if _, err := AppendRaw(nil, config.FloatLayout(99), Raw{}); !errors.Is(err, ErrLayout) {
		t.Fatalf("ERR: expected ErrLayout, got %v", err)
	}
}

func TestNativeLayout(t *testing.T) {
	// The host's own float64 image must match the configured layout.
	x := math.Pi
	var buf [8]byte
	if err := PutRaw(buf[:], config.Float64Layout, Float64Raw(x)); err != nil {
		t.Fatal(err)
	}
	r, err := ReadRaw(buf[:], config.Float64Layout)
	if err != nil || math.Float64frombits(r.Lo) != x {
		t.Fatalf("ERR: native round trip of pi: %v %v", r, err)
	}
	if config.BigEndian != (buf[0] == 0x40) {
		t.Fatalf("ERR: byte order mismatch: % X", buf)
	}
}

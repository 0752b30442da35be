package parser

import "unicode/utf8"

// Decoder accumulates the bytes of one code point. Add reports done=false
// while a multi-byte sequence is incomplete; on an invalid leading or
// continuation byte it emits U+FFFD and resets, so the stream resynchronizes
// on the next byte instead of cascading failures.
//
// The variant is chosen once at parser construction and never changes.
type Decoder interface {
	Add(b byte) (r rune, done bool)
}

// ASCIIDecoder disclaims Unicode entirely: handing it an 8-bit byte is a
// configuration error and panics. Used by NewASCIIParser.
type ASCIIDecoder struct{}

func (ASCIIDecoder) Add(b byte) (rune, bool) {
	if b >= 0x80 {
		panic("parser: 8-bit byte fed to a strict ASCII decoder")
	}
	return rune(b), true
}

// UTF8Decoder is the incremental multi-byte decoder: a continuation-byte
// countdown plus the accumulated bits.
//
// Code points outside the Basic Multilingual Plane decode to U+FFFD. A
// known limitation, kept for compatibility with existing consumers.
type UTF8Decoder struct {
	remaining int
	bits      rune
}

func (d *UTF8Decoder) Add(b byte) (rune, bool) {
	if d.remaining > 0 {
		if b&0xc0 != 0x80 {
			// not a continuation byte: drop the partial code point
			d.remaining = 0
			return utf8.RuneError, true
		}
		d.bits = d.bits<<6 | rune(b&0x3f)
		d.remaining--
		if d.remaining > 0 {
			return 0, false
		}
		r := d.bits
		if r > 0xffff || (0xd800 <= r && r <= 0xdfff) {
			r = utf8.RuneError
		}
		return r, true
	}

	switch {
	case b&0xe0 == 0xc0:
		d.remaining = 1
		d.bits = rune(b & 0x1f)
	case b&0xf0 == 0xe0:
		d.remaining = 2
		d.bits = rune(b & 0x0f)
	case b&0xf8 == 0xf0:
		d.remaining = 3
		d.bits = rune(b & 0x07)
	default:
		// stray continuation byte or invalid lead
		return utf8.RuneError, true
	}
	return 0, false
}

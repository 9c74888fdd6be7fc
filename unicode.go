// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package evjson

import "unicode/utf8"

// utf8Decoder is a resumable, byte-at-a-time UTF-8 validator. It is used to
// check the raw (non-escaped) bytes of a JSON string as they are scanned,
// one byte at a time, so that a multi-byte sequence split across two
// SetSource calls is validated correctly without ever needing to see the
// whole sequence in one contiguous buffer.
//
// The byte-range table used to reject overlong encodings, encoded
// surrogates, and codepoints above U+10FFFF follows the well-formedness
// table underlying the standard UTF-8 validation algorithms (see the
// well-formed byte sequences table in the Unicode Standard, chapter 3);
// freekieb7-gravel's json.Scanner implements the same table shape for its
// own incremental, buffer-refill-aware rune decoder.
type utf8Decoder struct {
	remaining int    // continuation bytes still expected
	lo, hi    byte   // allowed range for the *next* continuation byte
	cp        uint32 // codepoint accumulated so far
}

// reset clears any in-progress multi-byte sequence.
func (d *utf8Decoder) reset() { *d = utf8Decoder{} }

// pending reports whether a multi-byte sequence is waiting for more
// continuation bytes.
func (d *utf8Decoder) pending() bool { return d.remaining > 0 }

// step feeds one input byte to the decoder.
//
//   - If c completes a valid scalar value, step returns (r, true, 0).
//   - If c is a valid non-final byte of a longer sequence, step returns
//     (0, false, 0); the caller should keep accumulating raw bytes and call
//     step again with the next one.
//   - If c is invalid at this position, step returns (0, false, kind) with
//     an ErrorKind describing why, and resets the decoder.
func (d *utf8Decoder) step(c byte) (r rune, done bool, kind ErrorKind, isErr bool) {
	if d.remaining == 0 {
		switch {
		case c < 0x80:
			return rune(c), true, 0, false
		case c < 0xC2: // continuation byte or overlong 2-byte lead
			return 0, false, ErrExpectedContinuationByte, true
		case c < 0xE0: // 2-byte sequence
			d.remaining, d.lo, d.hi, d.cp = 1, 0x80, 0xBF, uint32(c&0x1F)
		case c == 0xE0: // 3-byte, exclude overlong
			d.remaining, d.lo, d.hi, d.cp = 2, 0xA0, 0xBF, uint32(c&0x0F)
		case c < 0xED: // 3-byte sequence
			d.remaining, d.lo, d.hi, d.cp = 2, 0x80, 0xBF, uint32(c&0x0F)
		case c == 0xED: // 3-byte, exclude encoded surrogates
			d.remaining, d.lo, d.hi, d.cp = 2, 0x80, 0x9F, uint32(c&0x0F)
		case c < 0xF0: // 3-byte sequence
			d.remaining, d.lo, d.hi, d.cp = 2, 0x80, 0xBF, uint32(c&0x0F)
		case c == 0xF0: // 4-byte, exclude overlong
			d.remaining, d.lo, d.hi, d.cp = 3, 0x90, 0xBF, uint32(c&0x07)
		case c < 0xF4: // 4-byte sequence
			d.remaining, d.lo, d.hi, d.cp = 3, 0x80, 0xBF, uint32(c&0x07)
		case c == 0xF4: // 4-byte, exclude codepoints above U+10FFFF
			d.remaining, d.lo, d.hi, d.cp = 3, 0x80, 0x8F, uint32(c&0x07)
		default:
			return 0, false, ErrOverlongUTF8Sequence, true
		}
		return 0, false, 0, false
	}

	if c < d.lo || c > d.hi {
		d.reset()
		return 0, false, ErrExpectedContinuationByte, true
	}
	d.cp = d.cp<<6 | uint32(c&0x3F)
	d.remaining--
	d.lo, d.hi = 0x80, 0xBF // only the first continuation byte is range-restricted

	if d.remaining > 0 {
		return 0, false, 0, false
	}
	cp := d.cp
	d.reset()
	if cp > utf8.MaxRune {
		return 0, false, ErrIllegalCodepoint, true
	}
	return rune(cp), true, 0, false
}

// isHighSurrogate reports whether cp is a UTF-16 high surrogate.
func isHighSurrogate(cp rune) bool { return cp >= 0xD800 && cp <= 0xDBFF }

// isLowSurrogate reports whether cp is a UTF-16 low surrogate.
func isLowSurrogate(cp rune) bool { return cp >= 0xDC00 && cp <= 0xDFFF }

// combineSurrogates reassembles a UTF-16 surrogate pair into a scalar
// codepoint.
func combineSurrogates(hi, lo rune) rune {
	return 0x10000 + (hi-0xD800)<<10 + (lo - 0xDC00)
}

// appendScalar appends the UTF-8 encoding of cp to dst.
func appendScalar(dst []byte, cp rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], cp)
	return append(dst, buf[:n]...)
}

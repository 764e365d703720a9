// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// modifiedUTF8Decoder is a transform.Transformer that turns the JVM's
// "modified UTF-8" encoding (JVM Specification §4.4.7) into standard
// UTF-8. It differs from plain UTF-8 in two ways: the null code point
// is encoded as the two bytes 0xC0 0x80 instead of a single 0x00, and
// code points above U+FFFF are encoded as a surrogate pair, each half
// encoded as its own 3-byte sequence, rather than as one 4-byte
// sequence. Modeled as a golang.org/x/text/transform.Transformer so it
// composes with the rest of the x/text encoding machinery.
type modifiedUTF8Decoder struct{ transform.NopResetter }

func newModifiedUTF8Decoder() transform.Transformer {
	return modifiedUTF8Decoder{}
}

func (modifiedUTF8Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b0 := src[nSrc]

		switch {
		case b0 < 0x80:
			if b0 == 0x00 {
				return nDst, nSrc, errModifiedUTF8("unexpected single null byte")
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b0
			nDst++
			nSrc++

		case b0&0xE0 == 0xC0:
			if nSrc+2 > len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, errModifiedUTF8("truncated two-byte sequence")
			}
			b1 := src[nSrc+1]
			if b1&0xC0 != 0x80 {
				return nDst, nSrc, errModifiedUTF8("malformed two-byte sequence")
			}
			r := rune(b0&0x1F)<<6 | rune(b1&0x3F)
			n := utf8.RuneLen(r)
			if nDst+n > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			utf8.EncodeRune(dst[nDst:], r)
			nDst += n
			nSrc += 2

		case b0&0xF0 == 0xE0:
			if nSrc+3 > len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, errModifiedUTF8("truncated three-byte sequence")
			}
			b1, b2 := src[nSrc+1], src[nSrc+2]
			if b1&0xC0 != 0x80 || b2&0xC0 != 0x80 {
				return nDst, nSrc, errModifiedUTF8("malformed three-byte sequence")
			}
			r1 := rune(b0&0x0F)<<12 | rune(b1&0x3F)<<6 | rune(b2&0x3F)

			if isHighSurrogate(r1) {
				// Supplementary character encoded as two adjacent
				// 3-byte sequences, one per surrogate half.
				if nSrc+6 > len(src) {
					if !atEOF {
						return nDst, nSrc, transform.ErrShortSrc
					}
					return nDst, nSrc, errModifiedUTF8("truncated surrogate pair")
				}
				b3, b4, b5 := src[nSrc+3], src[nSrc+4], src[nSrc+5]
				if b3 != 0xED || b4&0xC0 != 0x80 || b5&0xC0 != 0x80 {
					return nDst, nSrc, errModifiedUTF8("high surrogate not followed by a low surrogate")
				}
				r2 := rune(b3&0x0F)<<12 | rune(b4&0x3F)<<6 | rune(b5&0x3F)
				if !isLowSurrogate(r2) {
					return nDst, nSrc, errModifiedUTF8("high surrogate not followed by a low surrogate")
				}
				combined := 0x10000 + (r1-0xD800)<<10 + (r2 - 0xDC00)
				n := utf8.RuneLen(combined)
				if nDst+n > len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				utf8.EncodeRune(dst[nDst:], combined)
				nDst += n
				nSrc += 6
				continue
			}

			if isLowSurrogate(r1) {
				return nDst, nSrc, errModifiedUTF8("unpaired low surrogate")
			}
			n := utf8.RuneLen(r1)
			if nDst+n > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			utf8.EncodeRune(dst[nDst:], r1)
			nDst += n
			nSrc += 3

		default:
			return nDst, nSrc, errModifiedUTF8("byte does not start a valid modified UTF-8 sequence")
		}
	}
	return nDst, nSrc, nil
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

type modifiedUTF8Error string

func errModifiedUTF8(msg string) error { return modifiedUTF8Error(msg) }

func (e modifiedUTF8Error) Error() string { return string(e) }

// decodeModifiedUTF8 decodes raw as JVM modified UTF-8, returning
// standard Go UTF-8 text.
func decodeModifiedUTF8(raw []byte) (string, error) {
	out, _, err := transform.Bytes(newModifiedUTF8Decoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

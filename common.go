package ber

/*
common.go contains small helpers and package-level function aliases
used throughout this package. Keeping these as variables (rather than
calling into strconv/strings directly everywhere) mirrors how the rest
of the ASN.1 tooling in this family of packages names its primitives.
*/

import (
	"encoding/hex"
	"strconv"
	"strings"
)

var (
	itoa    func(int) string                    = strconv.Itoa
	hexenc  func([]byte) string                 = hex.EncodeToString
	hexdec  func(string) ([]byte, error)         = hex.DecodeString
	uc      func(string) string                  = strings.ToUpper
	hasPfx  func(string, string) bool            = strings.HasPrefix
	trimPfx func(string, string) string          = strings.TrimPrefix
)

// isPrintableByte reports whether b falls within the range of bytes
// commonly accepted by a standard ASCII "isprint" predicate: the
// printable range 0x20 (space) through 0x7E ("~").
func isPrintableByte(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// isHexDigit reports whether b is one of 0-9, a-f or A-F.
func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}

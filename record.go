package ber

/*
record.go contains the Record interface and the header struct shared
by every concrete record variant (Generic, Constructed, Sequence, Set,
Integer, Enumerated, OctetString, Boolean, Null). header carries the
class/tag/constructed/length attributes common to all BER records;
each variant embeds it and supplies its own value storage plus
decodeValue/encodeValue/StringList behavior.
*/

// Record is implemented by every record variant this package knows
// how to decode or construct: Generic, Constructed, Sequence, Set,
// Integer, Enumerated, OctetString, Boolean and Null.
type Record interface {
	// TagClass returns the record's tag class.
	TagClass() TagClass

	// TagNumber returns the record's tag number (0..127).
	TagNumber() int

	// UniversalTag returns the standard universal tag name for the
	// receiver, or NotApplicable if TagClass() is not Universal.
	UniversalTag() UniversalTagType

	// IsConstructed reports whether the receiver is a constructed
	// (rather than primitive) record.
	IsConstructed() bool

	// ValueLength returns the number of bytes in the record's value
	// payload.
	ValueLength() int

	// TotalLength returns the number of bytes in the record's tag,
	// length and value octets combined.
	TotalLength() int

	// Encode returns the full BER encoding of the receiver: identifier
	// octet(s), length octet(s), and value octets.
	Encode() []byte

	// String returns a single-line or (for constructed records)
	// multi-line human-readable rendering of the receiver.
	String() string

	// StringList returns the rendering of String split into its
	// constituent lines, with no trailing newline entries.
	StringList() []string

	encodeValue() []byte
	decodeValue(data []byte, lazy bool) error
}

// header carries the attributes common to every Record
// implementation: tag class, tag number, constructed flag, and the
// value/total byte lengths.
type header struct {
	class       TagClass
	tagNumber   int
	constructed bool
	valueLen    int
	totalLen    int
}

func (h header) TagClass() TagClass { return h.class }
func (h header) TagNumber() int     { return h.tagNumber }
func (h header) IsConstructed() bool { return h.constructed }
func (h header) ValueLength() int   { return h.valueLen }
func (h header) TotalLength() int   { return h.totalLen }

func (h header) UniversalTag() UniversalTagType {
	if h.class != Universal {
		return NotApplicable
	}
	return UniversalTagType(h.tagNumber)
}

// tagOctetLen returns the number of identifier octets this header's
// tag number requires: 1 for tag numbers below 31, 2 otherwise.
func (h header) tagOctetLen() int {
	if h.tagNumber < 31 {
		return 1
	}
	return 2
}

// encodeHeader appends the identifier and length octets (but not the
// value) for h to dst.
func (h header) encodeHeader(dst []byte) []byte {
	dst = encodeTag(dst, h.class, h.tagNumber, h.constructed)
	dst = encodeLength(dst, h.valueLen)
	return dst
}

// validateTagNumber enforces the single-octet tag number range this
// package's constructors restrict themselves to (0..30 plus the
// two-octet continuation form up to 127). Per the package's Open
// Question resolution, tag numbers greater than 127 are rejected
// outright since they can never round-trip through the one
// continuation-octet encoder.
func validateTagNumber(n int) error {
	if n < 0 || n > 127 {
		return tagErrorf(ErrUnsupportedHighTag, "tag number out of supported range 0..127")
	}
	return nil
}

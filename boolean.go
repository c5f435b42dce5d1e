package ber

/*
boolean.go contains BooleanRecord: the Universal primitive tag 1
(BOOLEAN) variant. Any non-zero value byte decodes as true; this
package always re-encodes true as 0xFF and false as 0x00, per BER
(note this is not DER-canonical for every implementation, but is the
convention this package's decoder enforces on encode regardless of how
a record was originally decoded).
*/

const (
	booleanTrueOctet  byte = 0xFF
	booleanFalseOctet byte = 0x00
)

// BooleanRecord holds the Universal BOOLEAN type (tag 1).
type BooleanRecord struct {
	header
	value bool
}

// NewBooleanRecord builds a BooleanRecord holding v.
func NewBooleanRecord(v bool) BooleanRecord {
	return BooleanRecord{
		header: header{
			class:     Universal,
			tagNumber: int(Boolean),
			valueLen:  1,
			totalLen:  3,
		},
		value: v,
	}
}

// Value returns the receiver's Boolean value.
func (r BooleanRecord) Value() bool { return r.value }

func (r BooleanRecord) encodeValue() []byte {
	if r.value {
		return []byte{booleanTrueOctet}
	}
	return []byte{booleanFalseOctet}
}

func (r *BooleanRecord) decodeValue(data []byte, _ bool) error {
	if len(data) != 1 {
		return decodeErrorf(ErrInsufficientData, "BOOLEAN requires exactly one value octet")
	}
	r.value = data[0] != booleanFalseOctet
	return nil
}

// Encode returns the full BER encoding of the receiver.
func (r BooleanRecord) Encode() []byte {
	dst := r.header.encodeHeader(nil)
	return append(dst, r.encodeValue()...)
}

func (r BooleanRecord) StringList() []string {
	val := "false"
	if r.value {
		val = "true"
	}
	return []string{headerLine(r.header) + ", Value: " + val}
}

func (r BooleanRecord) String() string { return joinLines(r.StringList()) }

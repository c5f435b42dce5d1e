package ber

/*
null.go contains NullRecord: the Universal primitive tag 5 (NULL)
variant. NULL carries no value state at all; valueLen is always 0 and
totalLen is always 2.
*/

// NullRecord holds the Universal NULL type (tag 5). It carries no
// state beyond its header.
type NullRecord struct {
	header
}

// NewNullRecord builds a NullRecord.
func NewNullRecord() NullRecord {
	return NullRecord{
		header: header{
			class:     Universal,
			tagNumber: int(Null),
			valueLen:  0,
			totalLen:  2,
		},
	}
}

func (r NullRecord) encodeValue() []byte { return nil }

func (r *NullRecord) decodeValue(data []byte, _ bool) error {
	if len(data) != 0 {
		return decodeErrorf(ErrInsufficientData, "NULL must have zero-length value")
	}
	return nil
}

// Encode returns the full BER encoding of the receiver.
func (r NullRecord) Encode() []byte {
	return r.header.encodeHeader(nil)
}

func (r NullRecord) StringList() []string {
	return []string{headerLine(r.header)}
}

func (r NullRecord) String() string { return joinLines(r.StringList()) }

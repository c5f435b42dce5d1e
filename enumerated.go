package ber

/*
enumerated.go contains EnumeratedRecord: exactly an IntegerRecord with
its tag number overridden to the Universal ENUMERATED tag (10). All
storage, encoding and decoding logic is inherited from IntegerRecord;
only the tag number and the rendered type name differ.
*/

// EnumeratedRecord holds the Universal ENUMERATED type (tag 10). It is
// an IntegerRecord in every respect but its tag number.
type EnumeratedRecord struct {
	IntegerRecord
}

// NewEnumeratedRecord builds an EnumeratedRecord from the minimal
// big-endian byte representation of v.
func NewEnumeratedRecord(v uint64) EnumeratedRecord {
	r := EnumeratedRecord{IntegerRecord: NewIntegerRecord(v)}
	r.tagNumber = int(Enumerated)
	return r
}

// NewEnumeratedRecordFromHex builds an EnumeratedRecord from a hex
// digit string, which may carry an optional "0x"/"0X" prefix.
func NewEnumeratedRecordFromHex(hex string) (EnumeratedRecord, error) {
	inner, err := NewIntegerRecordFromHex(hex)
	if err != nil {
		return EnumeratedRecord{}, err
	}
	r := EnumeratedRecord{IntegerRecord: inner}
	r.tagNumber = int(Enumerated)
	return r, nil
}

func (r EnumeratedRecord) Encode() []byte {
	dst := r.header.encodeHeader(nil)
	return append(dst, r.encodeValue()...)
}

func (r EnumeratedRecord) StringList() []string {
	return []string{headerLine(r.header) + ", Value: " + r.renderValue()}
}

func (r EnumeratedRecord) String() string { return joinLines(r.StringList()) }

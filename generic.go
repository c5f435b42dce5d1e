package ber

/*
generic.go contains GenericRecord: the catch-all primitive variant
used for any record the dispatcher does not recognize as one of the
named primitives (Integer, Enumerated, OctetString, Boolean, Null).
Constructed records outside the Universal Sequence/Set tags are not
GenericRecords; they decode as ConstructedRecord (see constructed.go).
A GenericRecord owns a private copy of
its value bytes; it never defers to a lazy borrow since it has no
further structure to realize.
*/

// GenericRecord holds an opaque, owned copy of a record's value
// bytes. It is returned by the decoder whenever no more specific
// variant applies.
type GenericRecord struct {
	header
	value []byte
}

// NewGenericRecord constructs a GenericRecord from raw value bytes
// under the given class and tag number. The returned record is always
// primitive; to build a constructed record of arbitrary tag, build a
// ConstructedRecord instead.
func NewGenericRecord(class TagClass, tagNumber int, value []byte) (GenericRecord, error) {
	if err := validateTagNumber(tagNumber); err != nil {
		return GenericRecord{}, err
	}

	owned := append([]byte(nil), value...)
	return GenericRecord{
		header: header{
			class:     class,
			tagNumber: tagNumber,
			valueLen:  len(owned),
			totalLen:  len(owned) + 2,
		},
		value: owned,
	}, nil
}

func (r GenericRecord) encodeValue() []byte { return r.value }

func (r *GenericRecord) decodeValue(data []byte, _ bool) error {
	r.value = append([]byte(nil), data...)
	return nil
}

// Bytes returns the record's raw value payload.
func (r GenericRecord) Bytes() []byte { return r.value }

// Encode returns the full BER encoding of the receiver.
func (r GenericRecord) Encode() []byte {
	dst := r.header.encodeHeader(nil)
	return append(dst, r.encodeValue()...)
}

func (r GenericRecord) StringList() []string {
	return []string{headerLine(r.header)}
}

func (r GenericRecord) String() string { return joinLines(r.StringList()) }

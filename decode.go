package ber

/*
decode.go contains Decode: the top-level dispatcher. It reads a tag,
selects a record variant per the table below, reads a length, computes
and bounds-checks totalLength, then either eagerly decodes the value or
(when lazy is true) defers that work to the first read that needs it.

Dispatch table, in order:

	constructed + Universal + tag == Sequence -> SequenceRecord
	constructed + Universal + tag == Set      -> SetRecord
	constructed + anything else               -> ConstructedRecord
	primitive + Universal + tag in
	  {Integer, Enumerated, OctetString,
	   Boolean, Null}                         -> corresponding variant
	otherwise                                 -> GenericRecord

Any structural failure (insufficient data, length overflow, unsupported
high tag, or a totalLength that would exceed the remaining buffer)
returns a nil Record and a non-nil error; no partial record is ever
returned.
*/

// Decode parses one BER record from the front of data. When lazy is
// true, constructed records defer decoding their children until the
// first call to Children(); data must then remain valid for as long
// as the returned record tree is used, since lazily-decoded subtrees
// borrow directly into it rather than copying.
func Decode(data []byte, lazy bool) (Record, error) {
	class, tagNumber, constructed, tagLen, err := decodeTag(data)
	if err != nil {
		logDecodeFailure(err, 0)
		return nil, err
	}

	length, lengthLen, err := decodeLength(data[tagLen:], len(data)-tagLen)
	if err != nil {
		logDecodeFailure(err, tagLen)
		return nil, err
	}

	headerLen := tagLen + lengthLen
	totalLen := headerLen + length
	if totalLen < headerLen || totalLen > len(data) {
		err := decodeErrorf(ErrExceedsBuffer, "")
		logDecodeFailure(err, headerLen)
		return nil, err
	}

	value := data[headerLen:totalLen]

	h := header{
		class:       class,
		tagNumber:   tagNumber,
		constructed: constructed,
		valueLen:    length,
		totalLen:    totalLen,
	}

	rec, err := newVariant(h)
	if err != nil {
		logDecodeFailure(err, headerLen)
		return nil, err
	}

	if err := rec.decodeValue(value, lazy); err != nil {
		logDecodeFailure(err, headerLen)
		return nil, err
	}

	return rec, nil
}

// newVariant selects and constructs the zero-value shell for h's
// class/tag/constructed combination, per the dispatch table in this
// file's doc comment.
func newVariant(h header) (Record, error) {
	if h.constructed {
		switch {
		case h.class == Universal && h.tagNumber == int(Sequence):
			return &SequenceRecord{header: h}, nil
		case h.class == Universal && h.tagNumber == int(Set):
			return &SetRecord{header: h}, nil
		default:
			return &ConstructedRecord{header: h}, nil
		}
	}

	if h.class == Universal {
		switch UniversalTagType(h.tagNumber) {
		case Integer:
			return &IntegerRecord{header: h}, nil
		case Enumerated:
			return &EnumeratedRecord{IntegerRecord: IntegerRecord{header: h}}, nil
		case OctetString:
			return &OctetStringRecord{header: h}, nil
		case Boolean:
			return &BooleanRecord{header: h}, nil
		case Null:
			return &NullRecord{header: h}, nil
		}
	}

	return &GenericRecord{header: h}, nil
}

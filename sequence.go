package ber

/*
sequence.go contains SequenceRecord: the Universal/constructed tag 16
(SEQUENCE) variant. It shares constructedBase with ConstructedRecord
and SetRecord but is dispatched to directly whenever the decoder sees
a constructed Universal tag 16, and is rendered under the "Sequence"
universal type name.
*/

// SequenceRecord holds an ordered list of owned child records decoded
// from, or destined to encode as, a Universal SEQUENCE (tag 16).
// Child order is preserved exactly as decoded.
type SequenceRecord struct {
	header
	constructedBase
}

// NewSequenceRecord builds a SequenceRecord owning the supplied
// children, in order.
func NewSequenceRecord(children ...Record) SequenceRecord {
	valueLen := 0
	for _, c := range children {
		valueLen += c.TotalLength()
	}

	r := SequenceRecord{
		header: header{
			class:       Universal,
			tagNumber:   int(Sequence),
			constructed: true,
			valueLen:    valueLen,
		},
	}
	r.children = append([]Record(nil), children...)
	r.realized = true
	r.totalLen = r.tagOctetLen() + lengthOctetLen(valueLen) + valueLen
	return r
}

func (r *SequenceRecord) decodeValue(data []byte, lazy bool) error {
	if lazy {
		r.raw = data
		r.realized = false
		return nil
	}
	children, err := decodeChildren(data, false)
	if err != nil {
		return err
	}
	r.children = children
	r.realized = true
	return nil
}

func (r *SequenceRecord) encodeValue() []byte { return r.encodeChildren() }

func (r SequenceRecord) Encode() []byte {
	dst := r.header.encodeHeader(nil)
	cp := r
	return append(dst, cp.encodeValue()...)
}

func (r SequenceRecord) StringList() []string {
	cp := r
	return renderLinesFlat(headerLine(r.header), cp.childLines())
}

func (r SequenceRecord) String() string { return joinLines(r.StringList()) }

package ber

/*
set.go contains SetRecord: the Universal/constructed tag 17 (SET)
variant. Identical in mechanics to SequenceRecord, but dispatched from
Universal tag 17 and rendered under the "Set" universal type name.
This codec does not reorder SET members; encoded order always matches
decoded (or constructed) order.
*/

// SetRecord holds an ordered list of owned child records decoded
// from, or destined to encode as, a Universal SET (tag 17). As with
// SequenceRecord, member order is never reordered by this package.
type SetRecord struct {
	header
	constructedBase
}

// NewSetRecord builds a SetRecord owning the supplied children, in
// the order given.
func NewSetRecord(children ...Record) SetRecord {
	valueLen := 0
	for _, c := range children {
		valueLen += c.TotalLength()
	}

	r := SetRecord{
		header: header{
			class:       Universal,
			tagNumber:   int(Set),
			constructed: true,
			valueLen:    valueLen,
		},
	}
	r.children = append([]Record(nil), children...)
	r.realized = true
	r.totalLen = r.tagOctetLen() + lengthOctetLen(valueLen) + valueLen
	return r
}

func (r *SetRecord) decodeValue(data []byte, lazy bool) error {
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

func (r *SetRecord) encodeValue() []byte { return r.encodeChildren() }

func (r SetRecord) Encode() []byte {
	dst := r.header.encodeHeader(nil)
	cp := r
	return append(dst, cp.encodeValue()...)
}

func (r SetRecord) StringList() []string {
	cp := r
	return renderLinesFlat(headerLine(r.header), cp.childLines())
}

func (r SetRecord) String() string { return joinLines(r.StringList()) }

package ber

/*
constructed.go contains constructedBase: the shared child-list,
lazy-borrow and recursion logic behind ConstructedRecord, SequenceRecord
and SetRecord. decodeValue iteratively consumes the value window,
decoding one child at a time via Decode and advancing by the child's
TotalLength, until the window is exhausted. A child whose TotalLength
is zero, or that overruns the remaining window, is a fatal
ErrMalformedChild.

When decoded lazily, constructedBase retains a borrow of the raw value
bytes and defers the child-list realization to the first call to
Children. The borrowed slice is only ever a re-slice of the buffer the
original caller passed to Decode; the caller is responsible for
keeping that buffer alive for the lifetime of the record tree.
*/

// constructedBase is embedded by every record variant that holds
// an ordered list of owned child records.
type constructedBase struct {
	children []Record
	raw      []byte // lazy borrow; nil once realized or if decoded eagerly
	realized bool
}

// Children returns the receiver's child records, realizing them from
// a lazy borrow on first access if necessary.
func (c *constructedBase) Children() ([]Record, error) {
	if !c.realized {
		if err := c.realize(); err != nil {
			return nil, err
		}
	}
	return c.children, nil
}

// Append adds child to the receiver's owned child list. Appending the
// same child instance to two different parents is a caller error this
// package does not attempt to detect at runtime; callers should treat
// Append as a move.
func (c *constructedBase) Append(child Record) {
	if !c.realized {
		// Realize a lazy borrow first so its children are kept.
		_ = c.realize()
	}
	c.children = append(c.children, child)
	c.realized = true
	c.raw = nil
}

func (c *constructedBase) realize() error {
	children, err := decodeChildren(c.raw, true)
	if err != nil {
		return err
	}
	c.children = children
	c.realized = true
	c.raw = nil
	logLazyRealization(len(children))
	return nil
}

// decodeChildren decodes zero or more records back-to-back out of
// window, inheriting lazy for each. It is the core of every
// constructed variant's decodeValue.
func decodeChildren(window []byte, lazy bool) ([]Record, error) {
	var children []Record
	offset := 0

	for offset < len(window) {
		child, err := Decode(window[offset:], lazy)
		if err != nil {
			return nil, decodeErrorf(ErrMalformedChild, err.Error())
		}

		total := child.TotalLength()
		if total <= 0 {
			return nil, decodeErrorf(ErrMalformedChild, "child total length is zero")
		}
		if offset+total > len(window) {
			return nil, decodeErrorf(ErrMalformedChild, "child overruns parent window")
		}

		children = append(children, child)
		offset += total
	}

	return children, nil
}

// encodeChildren concatenates each child's full Encode() output, in
// order, realizing a lazy borrow first if necessary.
func (c *constructedBase) encodeChildren() []byte {
	children, err := c.Children()
	if err != nil {
		// A borrow that failed to realize cannot be re-encoded
		// faithfully; emit the original raw bytes verbatim instead
		// of silently dropping data.
		return c.raw
	}

	var out []byte
	for _, child := range children {
		out = append(out, child.Encode()...)
	}
	return out
}

func (c *constructedBase) childLines() []string {
	children, err := c.Children()
	if err != nil {
		return []string{"<unrealized: " + err.Error() + ">"}
	}

	var lines []string
	for _, child := range children {
		lines = append(lines, child.StringList()...)
	}
	return lines
}

// ConstructedRecord holds an ordered list of owned child records for
// any constructed tag other than the Universal Sequence/Set pair
// (which get their own named types below).
type ConstructedRecord struct {
	header
	constructedBase
}

// NewConstructedRecord builds a ConstructedRecord under the given
// class and tag number, owning the supplied children.
func NewConstructedRecord(class TagClass, tagNumber int, children ...Record) (ConstructedRecord, error) {
	if err := validateTagNumber(tagNumber); err != nil {
		return ConstructedRecord{}, err
	}

	valueLen := 0
	for _, c := range children {
		valueLen += c.TotalLength()
	}

	r := ConstructedRecord{
		header: header{
			class:       class,
			tagNumber:   tagNumber,
			constructed: true,
			valueLen:    valueLen,
		},
	}
	r.children = append([]Record(nil), children...)
	r.realized = true
	r.totalLen = r.tagOctetLen() + lengthOctetLen(valueLen) + valueLen
	return r, nil
}

func (r *ConstructedRecord) decodeValue(data []byte, lazy bool) error {
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

func (r *ConstructedRecord) encodeValue() []byte { return r.encodeChildren() }

func (r ConstructedRecord) Encode() []byte {
	dst := r.header.encodeHeader(nil)
	cp := r
	return append(dst, cp.encodeValue()...)
}

func (r ConstructedRecord) StringList() []string {
	cp := r
	return renderLinesFlat(headerLine(r.header), cp.childLines())
}

func (r ConstructedRecord) String() string { return joinLines(r.StringList()) }

package ber

/*
octetstring.go contains OctetStringRecord: the Universal primitive tag
4 (OCTET STRING) variant. Decoded records are classified printable or
not by scanning every value byte against the standard printable-ASCII
range; printable records store their text verbatim, non-printable
records store an uppercase hex representation of the raw bytes.
*/

// OctetStringRecord holds the Universal OCTET STRING type (tag 4),
// either as printable text or as a hex representation of raw bytes.
type OctetStringRecord struct {
	header
	value       string
	isPrintable bool
}

// NewOctetStringFromText builds an OctetStringRecord from a printable
// string, stored verbatim.
func NewOctetStringFromText(s string) OctetStringRecord {
	return OctetStringRecord{
		header: header{
			class:     Universal,
			tagNumber: int(OctetString),
			valueLen:  len(s),
			totalLen:  len(s) + 2,
		},
		value:       s,
		isPrintable: true,
	}
}

// NewOctetStringFromBytes builds an OctetStringRecord from raw bytes,
// stored as their uppercase hex representation.
func NewOctetStringFromBytes(b []byte) OctetStringRecord {
	return OctetStringRecord{
		header: header{
			class:     Universal,
			tagNumber: int(OctetString),
			valueLen:  len(b),
			totalLen:  len(b) + 2,
		},
		value:       uc(hexenc(b)),
		isPrintable: false,
	}
}

// IsPrintable reports whether the receiver's value is stored as
// verbatim text (true) or as a hex representation of raw bytes
// (false).
func (r OctetStringRecord) IsPrintable() bool { return r.isPrintable }

// Text returns the receiver's stored text when IsPrintable is true;
// otherwise it returns the stored uppercase hex representation.
func (r OctetStringRecord) Text() string { return r.value }

// Bytes returns the receiver's raw byte value, decoding the stored
// hex representation if necessary.
func (r OctetStringRecord) Bytes() []byte {
	if r.isPrintable {
		return []byte(r.value)
	}
	b, _ := hexdec(r.value)
	return b
}

func (r OctetStringRecord) encodeValue() []byte {
	if r.isPrintable {
		return []byte(r.value)
	}
	b, _ := hexdec(r.value)
	return b
}

func (r *OctetStringRecord) decodeValue(data []byte, _ bool) error {
	printable := true
	for _, b := range data {
		if !isPrintableByte(b) {
			printable = false
			break
		}
	}

	r.isPrintable = printable
	if printable {
		r.value = string(data)
	} else {
		r.value = uc(hexenc(data))
	}
	return nil
}

// Encode returns the full BER encoding of the receiver.
func (r OctetStringRecord) Encode() []byte {
	dst := r.header.encodeHeader(nil)
	return append(dst, r.encodeValue()...)
}

func (r OctetStringRecord) StringList() []string {
	return []string{headerLine(r.header) + ", Value: " + r.value}
}

func (r OctetStringRecord) String() string { return joinLines(r.StringList()) }

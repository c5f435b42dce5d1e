package ber

/*
integer.go contains IntegerRecord: the Universal primitive tag 2
(INTEGER) variant. Storage is a BigInt hex string; decodeValue
converts the raw value bytes to an uppercase hex string two digits per
byte, and encodeValue converts back via BigInt.ToBytes(), which
left-pads a single "0" nibble if the digit count is odd. See
enumerated.go for Enumerated, which is exactly this type under a different tag
number.
*/

// IntegerRecord holds the Universal INTEGER type (tag 2) as a BigInt.
// This package does not perform arithmetic on the stored value; it
// only preserves its byte representation.
type IntegerRecord struct {
	header
	value BigInt
}

// NewIntegerRecord builds an IntegerRecord from the minimal big-endian
// byte representation of v. Zero stores as a single 0x00 byte.
func NewIntegerRecord(v uint64) IntegerRecord {
	value := NewBigIntFromUint64(v)
	valueLen := value.Size()
	return IntegerRecord{
		header: header{
			class:     Universal,
			tagNumber: int(Integer),
			valueLen:  valueLen,
			totalLen:  valueLen + 2,
		},
		value: value,
	}
}

// NewIntegerRecordFromHex builds an IntegerRecord from a hex digit
// string, which may carry an optional "0x"/"0X" prefix. Per the
// package's Open Question resolution, valueLen is set to the decoded
// byte count (ceil(len(hex)/2)), not the raw character count of the
// input string.
func NewIntegerRecordFromHex(hex string) (IntegerRecord, error) {
	value, err := NewBigIntFromHex(hex)
	if err != nil {
		return IntegerRecord{}, err
	}

	valueLen := value.Size()
	return IntegerRecord{
		header: header{
			class:     Universal,
			tagNumber: int(Integer),
			valueLen:  valueLen,
			totalLen:  valueLen + 2,
		},
		value: value,
	}, nil
}

// Value returns the receiver's BigInt magnitude.
func (r IntegerRecord) Value() BigInt { return r.value }

func (r IntegerRecord) encodeValue() []byte { return r.value.ToBytes() }

func (r *IntegerRecord) decodeValue(data []byte, _ bool) error {
	r.value = NewBigIntFromBytes(data)
	return nil
}

// Encode returns the full BER encoding of the receiver.
func (r IntegerRecord) Encode() []byte {
	dst := r.header.encodeHeader(nil)
	return append(dst, r.encodeValue()...)
}

func (r IntegerRecord) renderValue() string {
	if v, ok := r.value.Uint64(); ok {
		return fmtUint64(v)
	}
	return "0x" + r.value.String()
}

func (r IntegerRecord) StringList() []string {
	return []string{headerLine(r.header) + ", Value: " + r.renderValue()}
}

func (r IntegerRecord) String() string { return joinLines(r.StringList()) }

// fmtUint64 formats v in decimal with a hand-rolled digit loop.
func fmtUint64(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

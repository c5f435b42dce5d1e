package ber

/*
universaltag.go contains the UniversalTagType enumeration: the
standard ASN.1 universal tag numbers, used both for decode dispatch
and for rendering type names.
*/

// UniversalTagType enumerates the ASN.1 universal class tag numbers
// this package is aware of. NotApplicable is returned by
// [Record.UniversalTag] for any record whose TagClass is not
// [Universal].
type UniversalTagType int

const (
	EndOfContent              UniversalTagType = 0
	Boolean                   UniversalTagType = 1
	Integer                   UniversalTagType = 2
	BitString                 UniversalTagType = 3
	OctetString               UniversalTagType = 4
	Null                      UniversalTagType = 5
	ObjectIdentifier          UniversalTagType = 6
	ObjectDescriptor          UniversalTagType = 7
	External                  UniversalTagType = 8
	Real                      UniversalTagType = 9
	Enumerated                UniversalTagType = 10
	EmbeddedPDV               UniversalTagType = 11
	UTF8String                UniversalTagType = 12
	RelativeObjectIdentifier  UniversalTagType = 13
	Time                      UniversalTagType = 14
	Reserved                  UniversalTagType = 15
	Sequence                  UniversalTagType = 16
	Set                       UniversalTagType = 17
	NumericString             UniversalTagType = 18
	PrintableString           UniversalTagType = 19
	T61String                 UniversalTagType = 20
	VideotexString            UniversalTagType = 21
	IA5String                 UniversalTagType = 22
	UTCTime                   UniversalTagType = 23
	GeneralizedTime           UniversalTagType = 24
	GraphicString             UniversalTagType = 25
	VisibleString             UniversalTagType = 26
	GeneralString             UniversalTagType = 27
	UniversalString           UniversalTagType = 28
	CharacterString           UniversalTagType = 29
	BMPString                 UniversalTagType = 30
	Date                      UniversalTagType = 31
	TimeOfDay                 UniversalTagType = 32
	DateTime                  UniversalTagType = 33
	Duration                  UniversalTagType = 34
	ObjectIdentifierIRI        UniversalTagType = 35
	RelativeObjectIdentifierIRI UniversalTagType = 36

	// NotApplicable is returned for records whose TagClass is not
	// Universal.
	NotApplicable UniversalTagType = -1
)

var universalTagNames = map[UniversalTagType]string{
	EndOfContent:                "End-of-Content",
	Boolean:                     "Boolean",
	Integer:                     "Integer",
	BitString:                   "Bit String",
	OctetString:                 "Octet String",
	Null:                        "Null",
	ObjectIdentifier:            "Object Identifier",
	ObjectDescriptor:            "Object Descriptor",
	External:                    "External",
	Real:                        "Real",
	Enumerated:                  "Enumerated",
	EmbeddedPDV:                 "Embedded PDV",
	UTF8String:                  "UTF8 String",
	RelativeObjectIdentifier:    "Relative Object Identifier",
	Time:                        "Time",
	Reserved:                    "Reserved",
	Sequence:                    "Sequence",
	Set:                         "Set",
	NumericString:               "Numeric String",
	PrintableString:             "Printable String",
	T61String:                   "T61 String",
	VideotexString:              "Videotex String",
	IA5String:                   "IA5 String",
	UTCTime:                     "UTC Time",
	GeneralizedTime:             "Generalized Time",
	GraphicString:               "Graphic String",
	VisibleString:               "Visible String",
	GeneralString:               "General String",
	UniversalString:             "Universal String",
	CharacterString:             "Character String",
	BMPString:                   "BMP String",
	Date:                        "Date",
	TimeOfDay:                   "Time-of-Day",
	DateTime:                    "Date-Time",
	Duration:                    "Duration",
	ObjectIdentifierIRI:         "OID-IRI",
	RelativeObjectIdentifierIRI: "Relative-OID-IRI",
}

// String returns the standard universal type name, or "Unknown
// Universal" for a number this package has no name on file for.
func (u UniversalTagType) String() string {
	if name, ok := universalTagNames[u]; ok {
		return name
	}
	if u == NotApplicable {
		return "N/A"
	}
	return "Unknown Universal"
}

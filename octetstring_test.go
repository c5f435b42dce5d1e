package ber

import "testing"

func TestOctetStringFromBytes_NonPrintableHexStorage(t *testing.T) {
	o := NewOctetStringFromBytes([]byte{0xDE, 0xAD})
	if o.IsPrintable() {
		t.Fatalf("NewOctetStringFromBytes(non-printable) reported IsPrintable()=true")
	}
	if o.Text() != "DEAD" {
		t.Errorf("Text() = %q, want \"DEAD\"", o.Text())
	}
	if string(o.Bytes()) != string([]byte{0xDE, 0xAD}) {
		t.Errorf("Bytes() = % X, want DE AD", o.Bytes())
	}
}

func TestOctetStringFromText_Printable(t *testing.T) {
	o := NewOctetStringFromText("Hello")
	if !o.IsPrintable() {
		t.Fatalf("NewOctetStringFromText reported IsPrintable()=false")
	}
	if o.Text() != "Hello" {
		t.Errorf("Text() = %q, want \"Hello\"", o.Text())
	}
	encoded := o.Encode()
	want := []byte{0x04, 0x05, 'H', 'e', 'l', 'l', 'o'}
	if string(encoded) != string(want) {
		t.Errorf("Encode() = % X, want % X", encoded, want)
	}
}

func TestOctetString_PrintableBoundary(t *testing.T) {
	// Byte 0x1F is below the printable range; 0x7F is above it.
	data := []byte{0x04, 0x02, 0x1F, 0x7F}
	rec, err := Decode(data, false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	o := rec.(*OctetStringRecord)
	if o.IsPrintable() {
		t.Fatalf("control bytes incorrectly classified as printable")
	}
	if o.Text() != "1F7F" {
		t.Errorf("Text() = %q, want \"1F7F\"", o.Text())
	}
}

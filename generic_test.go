package ber

import "testing"

func TestGenericRecord_RoundTrip(t *testing.T) {
	g, err := NewGenericRecord(ContextSpecific, 5, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	if err != nil {
		t.Fatalf("NewGenericRecord failed: %v", err)
	}

	encoded := g.Encode()
	rec, err := Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	gr, ok := rec.(*GenericRecord)
	if !ok {
		t.Fatalf("Decode returned %T, want *GenericRecord", rec)
	}
	if string(gr.Bytes()) != string([]byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("Bytes() = % X, want DE AD BE EF", gr.Bytes())
	}
	if gr.TagClass() != ContextSpecific || gr.TagNumber() != 5 {
		t.Errorf("got class=%v tag=%d, want ContextSpecific,5", gr.TagClass(), gr.TagNumber())
	}
}

func TestGenericRecord_RejectsOutOfRangeTag(t *testing.T) {
	if _, err := NewGenericRecord(Universal, 128, nil); err == nil {
		t.Fatalf("NewGenericRecord(tag=128) succeeded, want error")
	}
}

func TestGenericRecord_Owns(t *testing.T) {
	buf := []byte{1, 2, 3}
	g, err := NewGenericRecord(Application, 1, buf)
	if err != nil {
		t.Fatalf("NewGenericRecord failed: %v", err)
	}
	buf[0] = 0xFF
	if g.Bytes()[0] == 0xFF {
		t.Fatalf("GenericRecord did not copy its input buffer")
	}
}

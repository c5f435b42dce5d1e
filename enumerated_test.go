package ber

import "testing"

func TestEnumeratedRecord_TagOverride(t *testing.T) {
	e := NewEnumeratedRecord(3)
	if e.TagNumber() != int(Enumerated) {
		t.Fatalf("TagNumber() = %d, want %d", e.TagNumber(), int(Enumerated))
	}

	encoded := e.Encode()
	if encoded[0]&0x1F != byte(Enumerated) {
		t.Fatalf("encoded tag byte = %#X, want low 5 bits == %d", encoded[0], Enumerated)
	}

	rec, err := Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	er, ok := rec.(*EnumeratedRecord)
	if !ok {
		t.Fatalf("Decode returned %T, want *EnumeratedRecord", rec)
	}
	if v, ok := er.Value().Uint64(); !ok || v != 3 {
		t.Errorf("Value() = %d, want 3", v)
	}
	if er.String() != "Enumerated, Length: 2+1, Value: 3" {
		t.Errorf("String() = %q", er.String())
	}
}

func TestEnumeratedRecordFromHex(t *testing.T) {
	e, err := NewEnumeratedRecordFromHex("0x0A")
	if err != nil {
		t.Fatalf("NewEnumeratedRecordFromHex failed: %v", err)
	}
	if v, ok := e.Value().Uint64(); !ok || v != 10 {
		t.Errorf("Value() = %d, want 10", v)
	}
}

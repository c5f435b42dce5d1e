package ber

import "testing"

func TestNewBigIntFromHex(t *testing.T) {
	for idx, tt := range []struct {
		in   string
		want string
	}{
		{"05", "05"},
		{"0x05", "05"},
		{"0X ff", ""}, // space is invalid, expect error path below
		{"FF", "FF"},
		{"ff", "FF"},
	} {
		if tt.in == "0X ff" {
			if _, err := NewBigIntFromHex(tt.in); err == nil {
				t.Errorf("%s[%d] succeeded on invalid hex, want error", t.Name(), idx)
			}
			continue
		}

		b, err := NewBigIntFromHex(tt.in)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if b.String() != tt.want {
			t.Errorf("%s[%d] = %q, want %q", t.Name(), idx, b.String(), tt.want)
		}
	}
}

func TestNewBigIntFromHex_Empty(t *testing.T) {
	if _, err := NewBigIntFromHex(""); err == nil {
		t.Fatalf("NewBigIntFromHex(\"\") succeeded, want error")
	}
	if _, err := NewBigIntFromHex("0x"); err == nil {
		t.Fatalf("NewBigIntFromHex(\"0x\") succeeded, want error")
	}
}

func TestBigInt_ToBytes_OddPad(t *testing.T) {
	b, err := NewBigIntFromHex("5")
	if err != nil {
		t.Fatalf("NewBigIntFromHex failed: %v", err)
	}
	got := b.ToBytes()
	want := []byte{0x05}
	if string(got) != string(want) {
		t.Errorf("ToBytes() = % X, want % X", got, want)
	}
}

func TestBigInt_SizeMatchesToBytes(t *testing.T) {
	for _, hex := range []string{"5", "05", "ABC", "DEADBEEF", "1"} {
		b, err := NewBigIntFromHex(hex)
		if err != nil {
			t.Fatalf("NewBigIntFromHex(%q) failed: %v", hex, err)
		}
		if b.Size() != len(b.ToBytes()) {
			t.Errorf("BigInt(%q).Size() = %d, want len(ToBytes()) = %d", hex, b.Size(), len(b.ToBytes()))
		}
	}
}

func TestNewBigIntFromUint64_ZeroIsOneByte(t *testing.T) {
	b := NewBigIntFromUint64(0)
	if b.Size() != 1 || b.String() != "00" {
		t.Errorf("NewBigIntFromUint64(0) = %q (size %d), want \"00\" (size 1)", b.String(), b.Size())
	}
}

func TestBigInt_CanFitAndUint64(t *testing.T) {
	b := NewBigIntFromUint64(5)
	if !CanFit[uint64](b) {
		t.Fatalf("CanFit[uint64] false for small value")
	}
	v, ok := b.Uint64()
	if !ok || v != 5 {
		t.Errorf("Uint64() = (%d, %v), want (5, true)", v, ok)
	}

	huge, err := NewBigIntFromHex("FFFFFFFFFFFFFFFFFF") // 9 bytes, overflows uint64
	if err != nil {
		t.Fatalf("NewBigIntFromHex failed: %v", err)
	}
	if CanFit[uint64](huge) {
		t.Fatalf("CanFit[uint64] true for a 9-byte magnitude")
	}
}

package sysex

import (
	"bytes"
	"errors"
	"testing"
)

func TestNybblify_HighFirst(t *testing.T) {
	in := []byte{0x01, 0x23, 0x45}
	expected := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}
	if got := Nybblify(in, HighFirst); !bytes.Equal(got, expected) {
		t.Errorf("Nybblify() = % 02X, expected % 02X", got, expected)
	}
}

func TestNybblify_LowFirst(t *testing.T) {
	in := []byte{0x01, 0x23, 0x45}
	expected := []byte{0x01, 0x00, 0x03, 0x02, 0x05, 0x04}
	if got := Nybblify(in, LowFirst); !bytes.Equal(got, expected) {
		t.Errorf("Nybblify() = % 02X, expected % 02X", got, expected)
	}
}

func TestDenybblify_HighFirst(t *testing.T) {
	in := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}
	expected := []byte{0x01, 0x23, 0x45}
	got, err := Denybblify(in, HighFirst)
	if err != nil {
		t.Fatalf("Denybblify failed: %v", err)
	}
	if !bytes.Equal(got, expected) {
		t.Errorf("Denybblify() = % 02X, expected % 02X", got, expected)
	}
}

func TestDenybblify_OddLength(t *testing.T) {
	if _, err := Denybblify([]byte{0x01, 0x02, 0x03}, HighFirst); !errors.Is(err, ErrMalformedEncoding) {
		t.Errorf("expected ErrMalformedEncoding, got %v", err)
	}
}

func TestNybble_RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF, 0x00, 0xA5, 0x5A},
		{0xF0, 0x42, 0x30, 0x28, 0x54, 0x02, 0x5C, 0xF7},
	}
	for _, order := range []NybbleOrder{HighFirst, LowFirst} {
		for _, in := range cases {
			got, err := Denybblify(Nybblify(in, order), order)
			if err != nil {
				t.Fatalf("round trip of % 02X failed: %v", in, err)
			}
			if !bytes.Equal(got, in) {
				t.Errorf("order=%d round trip mismatch:\n in  % 02X\n out % 02X", order, in, got)
			}
		}
	}
}

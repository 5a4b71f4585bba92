package sysex

import (
	"bytes"
	"errors"
	"testing"
)

func TestPack_KnownVector(t *testing.T) {
	in := []byte{101, 202, 103, 204, 105, 206, 107}
	expected := []byte{42, 101, 74, 103, 76, 105, 78, 107}
	if got := Pack(in); !bytes.Equal(got, expected) {
		t.Errorf("Pack() = %v, expected %v", got, expected)
	}
}

func TestUnpack_KnownVector(t *testing.T) {
	in := []byte{42, 101, 74, 103, 76, 105, 78, 107}
	expected := []byte{101, 202, 103, 204, 105, 206, 107}
	got, err := Unpack(in)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !bytes.Equal(got, expected) {
		t.Errorf("Unpack() = %v, expected %v", got, expected)
	}
}

func TestPack_OutputSize(t *testing.T) {
	// ceil(n/7)+n
	for _, n := range []int{0, 1, 6, 7, 8, 13, 14, 15, 100} {
		in := make([]byte, n)
		expected := (n+6)/7 + n
		if got := len(Pack(in)); got != expected {
			t.Errorf("n=%d: packed size %d, expected %d", n, got, expected)
		}
	}
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF},
		{0x80, 0x7F, 0x00, 0xFF, 0x01, 0xFE, 0x55, 0xAA},
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F},
	}
	// 覆盖各种块边界长度
	long := make([]byte, 23)
	for i := range long {
		long[i] = byte(i*37 + 128)
	}
	cases = append(cases, long)

	for _, in := range cases {
		got, err := Unpack(Pack(in))
		if err != nil {
			t.Fatalf("Unpack(Pack(%v)) failed: %v", in, err)
		}
		if !bytes.Equal(got, in) {
			t.Errorf("round trip mismatch:\n in  %v\n out %v", in, got)
		}
	}
}

func TestUnpack_ShortFinalChunk(t *testing.T) {
	// 末块 1索引+2数据，索引bit1置位
	in := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x02, 0x10, 0x20}
	got, err := Unpack(in)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	expected := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x10, 0xA0}
	if !bytes.Equal(got, expected) {
		t.Errorf("Unpack() = %v, expected %v", got, expected)
	}
}

func TestUnpack_LoneIndexByte(t *testing.T) {
	in := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x7F}
	if _, err := Unpack(in); !errors.Is(err, ErrMalformedEncoding) {
		t.Errorf("expected ErrMalformedEncoding, got %v", err)
	}
}

func TestUnpack_Empty(t *testing.T) {
	got, err := Unpack(nil)
	if err != nil {
		t.Fatalf("Unpack(nil) failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}

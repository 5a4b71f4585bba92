package sysex

import (
	"bytes"
	"errors"
	"testing"
)

func TestParse_StandardManufacturer(t *testing.T) {
	raw := []byte{0xF0, 0x40, 0x00, 0x20, 0x00, 0x04, 0x00, 0x3F, 0xF7}
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	mm, ok := msg.(*ManufacturerMessage)
	if !ok {
		t.Fatalf("expected *ManufacturerMessage, got %T", msg)
	}
	if mm.Manufacturer != StandardManufacturer(0x40) {
		t.Errorf("Manufacturer mismatch: got %v", mm.Manufacturer)
	}
	if !bytes.Equal(mm.Data, []byte{0x00, 0x20, 0x00, 0x04, 0x00, 0x3F}) {
		t.Errorf("Payload mismatch: % 02X", mm.Data)
	}
}

func TestParse_ExtendedManufacturer(t *testing.T) {
	raw := []byte{0xF0, 0x00, 0x00, 0x0E, 0x00, 0x41, 0x63, 0x00, 0x5D, 0xF7}
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	mm, ok := msg.(*ManufacturerMessage)
	if !ok {
		t.Fatalf("expected *ManufacturerMessage, got %T", msg)
	}
	if mm.Manufacturer != ExtendedManufacturer(0x00, 0x00, 0x0E) {
		t.Errorf("Manufacturer mismatch: got %v", mm.Manufacturer)
	}
	if !bytes.Equal(mm.Data, []byte{0x00, 0x41, 0x63, 0x00, 0x5D}) {
		t.Errorf("Payload mismatch: % 02X", mm.Data)
	}
}

func TestParse_UniversalNonRealTime(t *testing.T) {
	raw := []byte{0xF0, 0x7E, 0x00, 0x06, 0x01, 0xF7}
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	um, ok := msg.(*UniversalMessage)
	if !ok {
		t.Fatalf("expected *UniversalMessage, got %T", msg)
	}
	if um.Kind != KindNonRealTime {
		t.Errorf("Kind mismatch: got %v", um.Kind)
	}
	if um.Target != 0x00 || um.SubID1 != 0x06 || um.SubID2 != 0x01 {
		t.Errorf("header mismatch: target=0x%02X sub1=0x%02X sub2=0x%02X", um.Target, um.SubID1, um.SubID2)
	}
	if len(um.Data) != 0 {
		t.Errorf("expected empty payload, got % 02X", um.Data)
	}
}

func TestParse_Development(t *testing.T) {
	raw := []byte{0xF0, 0x7D, 0x01, 0x02, 0xF7}
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	mm, ok := msg.(*ManufacturerMessage)
	if !ok {
		t.Fatalf("expected *ManufacturerMessage, got %T", msg)
	}
	if mm.Manufacturer != DevelopmentManufacturer {
		t.Errorf("expected development manufacturer, got %v", mm.Manufacturer)
	}
	if !bytes.Equal(mm.Data, []byte{0x01, 0x02}) {
		t.Errorf("Payload mismatch: % 02X", mm.Data)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"空缓冲区", nil},
		{"缺少Initiator", []byte{0x40, 0x00, 0xF7}},
		{"缺少Terminator", []byte{0xF0, 0x40, 0x00}},
		{"整体过短", []byte{0xF0, 0xF7}},
		{"Universal过短", []byte{0xF0, 0x7E, 0x06, 0x01, 0xF7}},
		{"扩展ID过短", []byte{0xF0, 0x00, 0x00, 0xF7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.raw); !errors.Is(err, ErrInvalidMessage) {
				t.Errorf("expected ErrInvalidMessage, got %v", err)
			}
		})
	}
}

func TestMessage_BytesRoundTrip(t *testing.T) {
	frames := [][]byte{
		{0xF0, 0x40, 0x00, 0x20, 0x00, 0x04, 0x00, 0x3F, 0xF7},
		{0xF0, 0x00, 0x00, 0x0E, 0x00, 0x41, 0x63, 0x00, 0x5D, 0xF7},
		{0xF0, 0x7E, 0x00, 0x06, 0x01, 0xF7},
		{0xF0, 0x7F, 0x7F, 0x04, 0x01, 0x00, 0x40, 0xF7},
		{0xF0, 0x7D, 0xF7},
		{0xF0, 0x43, 0xF7},
	}
	for _, raw := range frames {
		msg, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(% 02X) failed: %v", raw, err)
		}
		if got := msg.Bytes(); !bytes.Equal(got, raw) {
			t.Errorf("round trip mismatch:\n in  % 02X\n out % 02X", raw, got)
		}
	}
}

func TestMessage_ConstructThenParse(t *testing.T) {
	orig := &ManufacturerMessage{
		Manufacturer: StandardManufacturer(0x42),
		Data:         []byte{0x30, 0x28, 0x54, 0x02, 0x5C},
	}
	msg, err := Parse(orig.Bytes())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	mm := msg.(*ManufacturerMessage)
	if mm.Manufacturer != orig.Manufacturer || !bytes.Equal(mm.Data, orig.Data) {
		t.Errorf("construct/parse mismatch: %+v vs %+v", mm, orig)
	}

	uorig := &UniversalMessage{Kind: KindRealTime, Target: 0x7F, SubID1: 0x04, SubID2: 0x01, Data: []byte{0x00, 0x40}}
	msg, err = Parse(uorig.Bytes())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	um := msg.(*UniversalMessage)
	if um.Kind != uorig.Kind || um.Target != uorig.Target || um.SubID1 != uorig.SubID1 ||
		um.SubID2 != uorig.SubID2 || !bytes.Equal(um.Data, uorig.Data) {
		t.Errorf("construct/parse mismatch: %+v vs %+v", um, uorig)
	}
}

func TestParse_CopiesPayload(t *testing.T) {
	raw := []byte{0xF0, 0x41, 0x10, 0x16, 0xF7}
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	raw[2] = 0x7F
	if !bytes.Equal(msg.Payload(), []byte{0x10, 0x16}) {
		t.Errorf("payload aliases caller buffer: % 02X", msg.Payload())
	}
}

package syxio

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestNumberedName(t *testing.T) {
	tests := []struct {
		path     string
		index    int
		expected string
	}{
		{"bank.syx", 1, "bank-001.syx"},
		{"bank.syx", 12, "bank-012.syx"},
		{"bank.syx", 123, "bank-123.syx"},
		{filepath.Join("out", "dump.syx"), 2, filepath.Join("out", "dump-002.syx")},
		{"noext", 1, "noext-001"},
	}
	for _, tt := range tests {
		if got := NumberedName(tt.path, tt.index); got != tt.expected {
			t.Errorf("NumberedName(%q, %d) = %q, expected %q", tt.path, tt.index, got, tt.expected)
		}
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.syx")
	data := []byte{0xF0, 0x43, 0xF7}
	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("read back % 02X, expected % 02X", got, data)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.syx")); err == nil {
		t.Error("expected error for missing file")
	}
}

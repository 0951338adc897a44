package content

import "testing"

func TestIsBinaryContent(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  bool
	}{
		{"plain text", []byte("hello\n"), false},
		{"null byte", []byte{'a', 0, 'b'}, true},
		{"utf16 bom", []byte{0xFF, 0xFE, 'a', 0}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinaryContent(tt.input); got != tt.want {
				t.Errorf("IsBinaryContent(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

package utils

import "testing"

func TestExtractModuleName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"simple.flux", "simple"},
		{"path/to/module.flux", "module"},
		{"module", "module"},
		{"/absolute/path/to/mod.flux", "mod"},
		{".flux", ""},
		{"name.with.dots.flux", "name.with.dots"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := ExtractModuleName(tt.path)
			if got != tt.expected {
				t.Errorf("ExtractModuleName(%q) = %q; want %q", tt.path, got, tt.expected)
			}
		})
	}
}

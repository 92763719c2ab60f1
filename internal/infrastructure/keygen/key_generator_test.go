package keygen

import (
	"regexp"
	"testing"
)

var keyPattern = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{8}-[0-9A-F]{8}$`)

func TestGenerator_Generate_Format(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		expected *regexp.Regexp
	}{
		{
			name:     "no prefix",
			prefix:   "",
			expected: keyPattern,
		},
		{
			name:     "plain prefix gets underscore separator",
			prefix:   "PWS",
			expected: regexp.MustCompile(`^PWS_[0-9A-F]{8}-[0-9A-F]{8}-[0-9A-F]{8}$`),
		},
		{
			name:     "prefix already ending in underscore is kept as is",
			prefix:   "PWS_",
			expected: regexp.MustCompile(`^PWS_[0-9A-F]{8}-[0-9A-F]{8}-[0-9A-F]{8}$`),
		},
		{
			name:     "surrounding whitespace is trimmed",
			prefix:   "  demo  ",
			expected: regexp.MustCompile(`^demo_[0-9A-F]{8}-[0-9A-F]{8}-[0-9A-F]{8}$`),
		},
		{
			name:     "whitespace-only prefix behaves like no prefix",
			prefix:   "   ",
			expected: keyPattern,
		},
	}

	gen := NewGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := gen.Generate(tt.prefix)
			if !tt.expected.MatchString(key) {
				t.Errorf("key %q does not match %s", key, tt.expected)
			}
		})
	}
}

func TestGenerator_Generate_Uniqueness(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		key := gen.Generate("")
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate key after %d generations: %s", i, key)
		}
		seen[key] = struct{}{}
	}
}

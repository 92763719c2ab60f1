package mocks

import "fmt"

// MockKeyGenerator implements domain.KeyGenerator interface for testing
type MockKeyGenerator struct {
	GenerateFunc func(prefix string) string

	calls int
}

// NewMockKeyGenerator creates a new MockKeyGenerator with default behaviors
func NewMockKeyGenerator() *MockKeyGenerator {
	return &MockKeyGenerator{}
}

// Generate produces an api key string
func (m *MockKeyGenerator) Generate(prefix string) string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(prefix)
	}
	// Default behavior: deterministic distinct keys
	m.calls++
	if prefix != "" {
		return fmt.Sprintf("%s_MOCKKEY%d", prefix, m.calls)
	}
	return fmt.Sprintf("MOCKKEY%d", m.calls)
}

package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  alice  \nsecond"), &out)

	answer, err := p.Ask("Name: ")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "alice" {
		t.Errorf("Expected %q, got %q", "alice", answer)
	}
	if out.String() != "Name: " {
		t.Errorf("Expected prompt to be written, got %q", out.String())
	}

	// Last line without trailing newline.
	answer, err = p.Ask("Next: ")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "second" {
		t.Errorf("Expected %q, got %q", "second", answer)
	}

	// Exhausted input yields an empty answer.
	answer, err = p.Ask("More: ")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "" {
		t.Errorf("Expected empty answer, got %q", answer)
	}
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}

	for _, tc := range tests {
		p := NewPrompter(strings.NewReader(tc.input), &bytes.Buffer{})
		got, err := p.Confirm("? ")
		if err != nil {
			t.Fatalf("Confirm(%q) failed: %v", tc.input, err)
		}
		if got != tc.expected {
			t.Errorf("Confirm(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}

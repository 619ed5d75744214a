package sqlite

import "testing"

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "memory", input: "sqlite://:memory:", expected: ":memory:"},
		{name: "absolute path", input: "sqlite:///var/lib/panelprompt.db", expected: "/var/lib/panelprompt.db"},
		{name: "explicit relative", input: "sqlite://./panelprompt.db", expected: "./panelprompt.db"},
		{name: "bare relative", input: "sqlite://panelprompt.db", expected: "./panelprompt.db"},
		{name: "escaped path", input: "sqlite://my%20comic.db", expected: "./my comic.db"},
		{name: "query kept", input: "sqlite://data.db?_pragma=foreign_keys(1)", expected: "./data.db?_pragma=foreign_keys(1)"},
		{name: "wrong scheme", input: "postgres://localhost/db", wantErr: true},
		{name: "empty path", input: "sqlite://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDSN(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("parseDSN(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package normalize

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"composite double quoted", `(1,"Quiz 1 - General Trivia")`, "Quiz 1 - General Trivia"},
		{"plain", "Simple Quiz", "Simple Quiz"},
		{"plain with whitespace", "  Simple Quiz \n", "Simple Quiz"},
		{"tripled single quotes", `(2,'''Nested Quiz''')`, "Nested Quiz"},
		{"paren without comma", "(no comma here", "(no comma here"},
		{"paren without comma trimmed", "  (no comma here  ", "(no comma here"},
		{"paren not first", "Quiz (1,2)", "Quiz (1,2)"},
		{"unquoted field", "(7,History)", "History"},
		{"escaped inner quotes", `(3,"Say ""hi""")`, `Say "hi"`},
		{"apostrophe", `(4,"Rock 'n' Roll")`, "Rock 'n' Roll"},
		{"doubled apostrophe", `(4,'Rock ''n'' Roll')`, "Rock 'n' Roll"},
		{"space after comma", `(5, "Spaced")`, "Spaced"},
		{"no closing paren", `(6,"Open`, `"Open`},
		{"extra fields kept", `(8,"A",x)`, `"A",x`},
		{"empty field", "(1,)", ""},
		{"lone quote", `(1,")`, ""},
		{"nested composite", `(1,"(2,Inner)")`, "Inner"},
		{"nested composite with space", `(1,"(x, y)")`, "y"},
		{"doubly nested", `(1,"(2,'(3,Deep)')")`, "Deep"},
		{"padded field", `(1," Padded ")`, "Padded"},
		{"invalid utf8 falls back", "(1,\xff)", "(1,\xff)"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringIsIdempotent(t *testing.T) {
	inputs := []string{
		`(1,"Quiz 1 - General Trivia")`,
		"Simple Quiz",
		`(2,'''Nested Quiz''')`,
		"(no comma here",
		`(3,"Say ""hi""")`,
		"Quiz (1,2)",
		`(1,"(2,Inner)")`,
		`(1,"(x, y)")`,
		`(1," Padded ")`,
		`(1,"(2,'(3,Deep)')")`,
		"(1,\xff)",
		"(\xff,ok)",
		"  (no comma here  ",
	}

	for _, in := range inputs {
		once := String(in)
		if twice := String(once); twice != once {
			t.Errorf("String not stable for %q: %q then %q", in, once, twice)
		}
	}
}

func TestValue(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"string", `(1,"Quiz 1 - General Trivia")`, "Quiz 1 - General Trivia", true},
		{"bytes", []byte(`(1,"From Bytes")`), "From Bytes", true},
		{"int64", int64(42), "42", true},
		{"float64", 1.5, "1.5", true},
		{"bool", true, "true", true},
		{"time", ts, "2025-03-01T12:00:00Z", true},
		{"int", 7, "7", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Value(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Value(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Value(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

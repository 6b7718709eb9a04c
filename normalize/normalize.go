// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Value converts a raw column value into a display string.
// The boolean result is false only when raw is nil.
func Value(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return String(v), true
	case []byte:
		// lib/pq hands text columns back as bytes when scanning into any
		return String(string(v)), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		return v.Format(time.RFC3339Nano), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// String strips a composite record rendering such as (1,"Quiz 1") down to
// its second field, repeating until no composite remains, so that
// String(String(s)) == String(s). Anything that is not a composite comes
// back trimmed.
func String(s string) string {
	s = strings.TrimSpace(s)

	out := s
	for {
		field, ok := extractField(out)
		if !ok {
			break
		}
		out = strings.TrimSpace(unescapeQuotes(unwrapQuotes(field)))
	}

	if !utf8.ValidString(out) {
		return s
	}
	return out
}

// extractField returns whatever follows the first comma of a value that
// starts with "(", minus the closing paren.
func extractField(s string) (string, bool) {
	if !strings.HasPrefix(s, "(") {
		return "", false
	}
	_, rest, found := strings.Cut(s, ",")
	if !found {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	return strings.TrimSuffix(rest, ")"), true
}

// unwrapQuotes peels matching outer quote pairs until none remain.
func unwrapQuotes(s string) string {
	for len(s) > 0 {
		q := s[0]
		if q != '"' && q != '\'' {
			return s
		}
		if s[len(s)-1] != q {
			return s
		}
		if len(s) == 1 {
			return ""
		}
		s = s[1 : len(s)-1]
	}
	return s
}

// unescapeQuotes collapses tripled and doubled quote runs left by driver
// level escaping.
func unescapeQuotes(s string) string {
	s = strings.ReplaceAll(s, `"""`, `"`)
	s = strings.ReplaceAll(s, `'''`, `'`)
	s = strings.ReplaceAll(s, `""`, `"`)
	return strings.ReplaceAll(s, `''`, `'`)
}

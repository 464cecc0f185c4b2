// Package normalize maps provider-native raw records into the unified response schema.
//
// One mapping function per raw-provider family, each tolerant of missing fields via
// ordered fallback chains. Mapping never fails: absent fields become empty strings,
// zeroes or nil slices, whatever shape the upstream produced.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UnknownTitle is the literal used when no provider supplied any title at all.
const UnknownTitle = "Unknown"

var episodeNumberRegex = regexp.MustCompile(`(\d+(\.\d+)?)`)

// str returns the first present, non-empty string among the given keys.
func str(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// dig walks a nested map path and returns the value at its end, or nil.
func dig(raw map[string]any, path ...string) any {
	var cur any = raw
	for _, k := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[k]
	}
	return cur
}

// digStr is dig for string leaves.
func digStr(raw map[string]any, path ...string) string {
	s, _ := dig(raw, path...).(string)
	return s
}

// coerceString renders scalar values in their display form. Whole floats lose the
// decimal point so a JSON-decoded episode 7 comes out as "7", not "7.000000".
func coerceString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// coerceInt extracts an integer from the scalar shapes providers actually send:
// JSON numbers, Lua numbers, integers and numeric strings.
func coerceInt(v any) (int, bool) {
	switch value := v.(type) {
	case float64:
		return int(value), true
	case int:
		return value, true
	case int64:
		return int(value), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// intOf returns the first coercible non-negative integer among the given keys.
func intOf(raw map[string]any, keys ...string) int {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if n, ok := coerceInt(v); ok && n >= 0 {
				return n
			}
		}
	}
	return 0
}

// scalarOf returns the display form of the first present scalar among the given keys.
func scalarOf(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s := coerceString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringsOf collects the string content of the first present list among the given
// keys. List entries may be plain strings or records carrying a name or title field.
func stringsOf(raw map[string]any, keys ...string) []string {
	for _, k := range keys {
		list, ok := raw[k].([]any)
		if !ok {
			continue
		}

		var out []string
		for _, entry := range list {
			switch value := entry.(type) {
			case string:
				if value != "" {
					out = append(out, value)
				}
			case map[string]any:
				if s := str(value, "name", "title"); s != "" {
					out = append(out, s)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// numberFrom extracts an episode number from free text, taking the last numeric run
// so "Season 2 Episode 13.5" yields "13.5".
func numberFrom(text string) string {
	matches := episodeNumberRegex.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

// asRecord coerces a raw sequence entry into a record, wrapping loose scalars so the
// chains above still have something to walk.
func asRecord(entry any) map[string]any {
	switch value := entry.(type) {
	case map[string]any:
		return value
	case string:
		return map[string]any{"title": value}
	case nil:
		return map[string]any{}
	default:
		return map[string]any{"title": fmt.Sprint(value)}
	}
}

package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoStructuredData is returned when no parseable JSON object or array can
// be recovered from the model output.
var ErrNoStructuredData = errors.New("no structured data found in model output")

// ExtractJSON recovers a JSON object or array embedded in free-form model
// output. Models routinely wrap the payload in prose or Markdown code fences,
// so the algorithm is deliberately loose:
//
//  1. strip code-fence markers,
//  2. slice from the first opening bracket to the last matching close,
//  3. parse as JSON; on failure, retry after normalizing single-quoted
//     keys/strings.
//
// Nested unrelated brackets or truncated output produce a wrong-but-reported
// result, never a panic: callers get ErrNoStructuredData and degrade to an
// error field in the response.
func ExtractJSON(raw string) (json.RawMessage, error) {
	cleaned := stripFences(raw)
	start, end := bracketSpan(cleaned)
	if start < 0 || end <= start {
		return nil, ErrNoStructuredData
	}
	return parseCandidate(cleaned[start : end+1])
}

// ExtractJSONArray is the array-only variant for callers that can only render
// a list of rows. A leading object does not satisfy it: only the span from
// the first '[' to the last ']' is considered, which also unwraps arrays the
// model nested inside an envelope object.
func ExtractJSONArray(raw string) (json.RawMessage, error) {
	cleaned := stripFences(raw)
	start := strings.IndexByte(cleaned, '[')
	end := strings.LastIndexByte(cleaned, ']')
	if start < 0 || end <= start {
		return nil, ErrNoStructuredData
	}
	return parseCandidate(cleaned[start : end+1])
}

func stripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	return strings.ReplaceAll(cleaned, "```", "")
}

func parseCandidate(candidate string) (json.RawMessage, error) {
	candidate = strings.TrimSpace(candidate)
	if json.Valid([]byte(candidate)) {
		return json.RawMessage(candidate), nil
	}

	// Permissive fallback: models sometimes emit Python-literal style output
	// with single-quoted strings.
	normalized := normalizeQuotes(candidate)
	if json.Valid([]byte(normalized)) {
		return json.RawMessage(normalized), nil
	}
	return nil, ErrNoStructuredData
}

// bracketSpan locates the first '{' or '[' and the last occurrence of its
// matching closer. Returns (-1, -1) when no span exists.
func bracketSpan(s string) (int, int) {
	objStart := strings.IndexByte(s, '{')
	arrStart := strings.IndexByte(s, '[')

	start := objStart
	closer := byte('}')
	if start < 0 || (arrStart >= 0 && arrStart < start) {
		start = arrStart
		closer = ']'
	}
	if start < 0 {
		return -1, -1
	}
	end := strings.LastIndexByte(s, closer)
	return start, end
}

// normalizeQuotes rewrites single-quoted strings as double-quoted JSON
// strings. It walks the input with a tiny state machine so apostrophes inside
// double-quoted strings are left alone and double quotes inside single-quoted
// strings get escaped.
func normalizeQuotes(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	const (
		outside = iota
		inDouble
		inSingle
	)
	state := outside
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			sb.WriteByte(c)
			escaped = false
			continue
		}
		switch {
		case c == '\\':
			sb.WriteByte(c)
			escaped = true
		case c == '"' && state == outside:
			state = inDouble
			sb.WriteByte(c)
		case c == '"' && state == inDouble:
			state = outside
			sb.WriteByte(c)
		case c == '"' && state == inSingle:
			sb.WriteString(`\"`)
		case c == '\'' && state == outside:
			state = inSingle
			sb.WriteByte('"')
		case c == '\'' && state == inSingle:
			state = outside
			sb.WriteByte('"')
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

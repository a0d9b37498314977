package generation

import (
	"encoding/json"
	"strings"
)

const (
	// bounds for looking up a payload embedded in free text
	maxEmbeddedScanBytes  = 64 << 10
	maxEmbeddedCandidates = 16
)

type ParseKind int

const (
	// ParsedStrict means the whole output decoded as the expected payload.
	ParsedStrict ParseKind = iota
	// ParsedEmbedded means the payload was found inside surrounding text.
	ParsedEmbedded
	// ParseFallback means nothing usable was found and Value is the fallback.
	ParseFallback
)

func (k ParseKind) String() string {
	switch k {
	case ParsedStrict:
		return "strict"
	case ParsedEmbedded:
		return "embedded"
	case ParseFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

type ParseResult[T any] struct {
	Value T
	Kind  ParseKind
}

func (r ParseResult[T]) OK() bool {
	return r.Kind != ParseFallback
}

// ParseJSON decodes raw generator output into T. It first tries the whole text,
// then JSON objects embedded in it (markdown fences, chatty preambles...),
// and yields fallback when both fail. It never returns an error.
func ParseJSON[T any](raw string, fallback T) ParseResult[T] {
	trimmed := strings.TrimSpace(raw)

	var strict T
	if trimmed != "" && json.Unmarshal([]byte(trimmed), &strict) == nil {
		return ParseResult[T]{Value: strict, Kind: ParsedStrict}
	}

	if len(trimmed) > maxEmbeddedScanBytes {
		trimmed = trimmed[:maxEmbeddedScanBytes]
	}
	// every opening brace is a possible start, an unbalanced or invalid
	// candidate only moves the scan to the next one
	pos := 0
	for tries := 0; tries < maxEmbeddedCandidates; tries++ {
		offset := strings.IndexByte(trimmed[pos:], '{')
		if offset == -1 {
			break
		}
		start := pos + offset
		pos = start + 1

		end, ok := objectEnd(trimmed, start)
		if !ok {
			continue
		}
		var embedded T
		if json.Unmarshal([]byte(trimmed[start:end+1]), &embedded) == nil {
			return ParseResult[T]{Value: embedded, Kind: ParsedEmbedded}
		}
	}

	return ParseResult[T]{Value: fallback, Kind: ParseFallback}
}

// JSONParser returns a parse function for Policy.Parse.
func JSONParser[T any](fallback T) func(string) ParseResult[T] {
	return func(raw string) ParseResult[T] {
		return ParseJSON(raw, fallback)
	}
}

// objectEnd returns the index of the brace closing the object opened at
// s[start]. Braces inside string literals do not affect nesting.
func objectEnd(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		b := s[i]

		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch b {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch b {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return -1, false
}

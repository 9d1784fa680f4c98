package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TagPair is a key:"value" pair in a struct tag.
type TagPair struct {
	Key   string
	Value string
}

// ParseStructTag parses a struct tag literal in the conventional format, e.g.,
// `json:"name,omitempty" yaml:"name"`. Unlike [reflect.StructTag], it keeps
// all pairs in order and reports malformed tags.
func ParseStructTag(lit string) ([]TagPair, error) {
	tag, err := strconv.Unquote(lit)
	if err != nil {
		return nil, fmt.Errorf("cannot unquote %s", lit)
	}

	var pairs []TagPair
	for {
		tag = strings.TrimLeft(tag, " ")
		if tag == "" {
			return pairs, nil
		}

		// Scan to colon. A space, a quote or a control character is a syntax
		// error.
		i := 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return nil, errors.New(`bad syntax, want key:"value" pairs`)
		}
		key := tag[:i]
		tag = tag[i+1:]

		// Scan quoted string to find value.
		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			return nil, fmt.Errorf("unterminated value of %s", key)
		}
		value, err := strconv.Unquote(tag[:i+1])
		if err != nil {
			return nil, fmt.Errorf("bad value of %s", key)
		}
		tag = tag[i+1:]

		pairs = append(pairs, TagPair{Key: key, Value: value})
	}
}

// FormatStructTag formats the pairs as a struct tag literal. It returns an
// empty string if there are no pairs.
func FormatStructTag(pairs []TagPair) string {
	if len(pairs) == 0 {
		return ""
	}

	parts := make([]string, len(pairs))
	for i, pair := range pairs {
		parts[i] = pair.Key + ":" + strconv.Quote(pair.Value)
	}
	tag := strings.Join(parts, " ")
	if strconv.CanBackquote(tag) {
		return "`" + tag + "`"
	}
	return strconv.Quote(tag)
}

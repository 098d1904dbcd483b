package parser

import (
	"strconv"
	"strings"
)

// ConfigBlock is the response to a config request: global graph attributes
// plus per-field attribute maps. When the node negotiated dirtyconfig it may
// inline data values; those arrive as "value" attributes in PerField with
// the same numeric-or-U validation as a fetch block.
type ConfigBlock struct {
	UpdateRate      int  // seconds; meaningful only when HasUpdateRate
	HasUpdateRate   bool
	GraphAttributes map[string]string            // graph_title, graph_vlabel, ...
	PerField        map[string]map[string]string // field name -> attribute -> value
}

func (*ConfigBlock) isResponse() {}

// Value is a single fetched field value: either a numeric reading or the
// literal "U" marking an explicitly unknown value.
type Value struct {
	Raw     string
	Number  float64 // 0 when Unknown
	Unknown bool
}

// ValueBlock is the response to a fetch or spoolfetch request.
type ValueBlock struct {
	Values map[string]Value // field name -> value
}

func (*ValueBlock) isResponse() {}

// Graph attributes taking a free-text value.
var graphTextAttributes = map[string]bool{
	"graph_title":  true,
	"graph_vlabel": true,
	"graph_args":   true,
	"graph_info":   true,
}

// ParseConfigBlock validates a config block payload. Every line must be an
// update_rate line, a known graph attribute line, or a per-field attribute
// line; one unclassifiable line fails the whole block. The payload must end
// with a '.' terminator line immediately after the last content line.
func ParseConfigBlock(text string) (*ConfigBlock, error) {
	content, perr := blockLines(text)
	if perr != nil {
		return nil, perr
	}

	block := &ConfigBlock{
		GraphAttributes: map[string]string{},
		PerField:        map[string]map[string]string{},
	}
	for i, ln := range content {
		if perr := block.addLine(i+1, ln); perr != nil {
			return nil, perr
		}
	}
	return block, nil
}

// addLine classifies and folds in one config line.
func (b *ConfigBlock) addLine(lineNo int, ln string) *ParseError {
	key, value := splitLineKey(ln)

	switch {
	case key == "update_rate":
		if !isWord(value, isDigit) {
			return NewDetailedParseError(lineNo, len(key)+1, ln, "update_rate requires a whole number of seconds, got %q", value)
		}
		seconds, err := strconv.Atoi(value)
		if err != nil {
			return NewDetailedParseError(lineNo, len(key)+1, ln, "update_rate %q out of range", value)
		}
		b.UpdateRate = seconds
		b.HasUpdateRate = true

	case graphTextAttributes[key]:
		if value == "" {
			return NewDetailedParseError(lineNo, len(key), ln, "%s requires a value", key)
		}
		b.GraphAttributes[key] = value

	case key == "graph_category":
		if strings.ContainsAny(value, " \t") || value == "" {
			return NewDetailedParseError(lineNo, len(key)+1, ln, "graph_category requires a single word, got %q", value)
		}
		b.GraphAttributes[key] = value

	case key == "graph_scale":
		if value != "yes" && value != "no" {
			return NewDetailedParseError(lineNo, len(key)+1, ln, "graph_scale must be \"yes\" or \"no\", got %q", value)
		}
		b.GraphAttributes[key] = value

	case key == "graph_period":
		if value != "second" && value != "minute" && value != "hour" {
			return NewDetailedParseError(lineNo, len(key)+1, ln, "graph_period must be \"second\", \"minute\" or \"hour\", got %q", value)
		}
		b.GraphAttributes[key] = value

	case strings.Contains(key, "."):
		field, attr, perr := splitFieldAttribute(lineNo, ln, key)
		if perr != nil {
			return perr
		}
		if attr == "value" {
			if _, perr := parseFieldValue(lineNo, ln, value); perr != nil {
				return perr
			}
		} else if value == "" {
			return NewDetailedParseError(lineNo, len(key), ln, "%s.%s requires a value", field, attr)
		}
		if b.PerField[field] == nil {
			b.PerField[field] = map[string]string{}
		}
		b.PerField[field][attr] = value

	default:
		return NewDetailedParseError(lineNo, 0, ln, "unrecognized config line")
	}
	return nil
}

// ParseValueBlock validates a fetch payload: one or more lines of the exact
// shape "<field>.value <numeric-or-U>", with the same '.' terminator rule as
// a config block.
func ParseValueBlock(text string) (*ValueBlock, error) {
	content, perr := blockLines(text)
	if perr != nil {
		return nil, perr
	}
	if len(content) == 0 {
		return nil, NewParseError(1, "value block must contain at least one value line")
	}

	values := make(map[string]Value, len(content))
	for i, ln := range content {
		lineNo := i + 1
		key, raw := splitLineKey(ln)
		field, attr, perr := splitFieldAttribute(lineNo, ln, key)
		if perr != nil {
			return nil, perr
		}
		if attr != "value" {
			return nil, NewDetailedParseError(lineNo, 0, ln, "expected \"%s.value\" line, got attribute %q", field, attr)
		}
		val, perr := parseFieldValue(lineNo, ln, raw)
		if perr != nil {
			return nil, perr
		}
		values[field] = val
	}
	return &ValueBlock{Values: values}, nil
}

// blockLines splits a terminated block payload into its content lines. The
// block must end with "\n.\n": a '.' line immediately after the last content
// line, followed by a final newline.
func blockLines(text string) ([]string, *ParseError) {
	lines := strings.Split(text, "\n")

	term := -1
	for i, ln := range lines {
		if ln == "." {
			term = i
			break
		}
	}
	if term == -1 {
		return nil, NewParseError(len(lines), "block missing '.' terminator")
	}

	rest := lines[term+1:]
	if len(rest) == 0 {
		return nil, NewParseError(term+1, "block must end with a newline after the '.' terminator")
	}
	for _, ln := range rest {
		if ln != "" {
			return nil, NewDetailedParseError(term+2, 0, ln, "unexpected content after block terminator")
		}
	}

	return lines[:term], nil
}

// splitLineKey splits a block line into its first token and the remainder,
// with surrounding whitespace trimmed from the remainder.
func splitLineKey(ln string) (key, value string) {
	i := strings.IndexAny(ln, " \t")
	if i == -1 {
		return ln, ""
	}
	return ln[:i], strings.TrimSpace(ln[i:])
}

// splitFieldAttribute splits a "<field>.<attribute>" key and validates both
// halves.
func splitFieldAttribute(lineNo int, ln, key string) (field, attr string, perr *ParseError) {
	dot := strings.Index(key, ".")
	if dot == -1 {
		return "", "", NewDetailedParseError(lineNo, 0, ln, "expected \"<field>.<attribute>\" key, got %q", key)
	}
	field, attr = key[:dot], key[dot+1:]
	if !isFieldName(field) {
		return "", "", NewDetailedParseError(lineNo, 0, ln, "invalid field name %q", field)
	}
	if !isIdentifier(attr) {
		return "", "", NewDetailedParseError(lineNo, dot+1, ln, "invalid field attribute %q", attr)
	}
	return field, attr, nil
}

// parseFieldValue validates a numeric-or-U field value token.
func parseFieldValue(lineNo int, ln, raw string) (Value, *ParseError) {
	col := strings.Index(ln, raw)
	if col < 0 {
		col = 0
	}
	if raw == "U" {
		return Value{Raw: raw, Unknown: true}, nil
	}
	if strings.ContainsAny(raw, " \t") || !isNumericLiteral(raw) {
		return Value{}, NewDetailedParseError(lineNo, col, ln, "field value must be numeric or \"U\", got %q", raw)
	}
	number, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{}, NewDetailedParseError(lineNo, col, ln, "field value %q out of range", raw)
	}
	return Value{Raw: raw, Number: number}, nil
}

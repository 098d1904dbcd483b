package parser

import "strings"

// Response is implemented by every structured response record produced by
// the response grammars. Callers type-switch on the concrete record.
type Response interface {
	isResponse()
}

// Banner is the node's greeting, the first message of every session.
type Banner struct {
	Node string // hostname announced by the node
}

func (*Banner) isResponse() {}

// NodeList is the response to a nodes request.
type NodeList struct {
	Nodes []string // hostnames, in the order the node sent them
}

func (*NodeList) isResponse() {}

// CapabilityList is the response to a cap request.
type CapabilityList struct {
	Capabilities []string
}

func (*CapabilityList) isResponse() {}

// PluginList is the response to a list request.
type PluginList struct {
	Plugins []string
}

func (*PluginList) isResponse() {}

// ParseBanner validates a node banner of the form
//
//	# munin node at <hostname>
//
// Arbitrary whitespace, including newlines, is accepted between the words
// and before the hostname. Nothing may precede the '#' and no token may
// follow the hostname.
func ParseBanner(text string) (*Banner, error) {
	s := newScanner(text)

	if s.eof() || s.peek() != '#' {
		return nil, s.errorf("banner must begin with '#'")
	}
	s.advance()

	if s.skipWhitespace() == 0 {
		return nil, s.errorf("expected whitespace after '#'")
	}

	for _, word := range []string{"munin", "node", "at"} {
		start := s.col
		tok := s.takeToken()
		if tok != word {
			return nil, s.errorAt(start, "expected %q in banner, got %q", word, tok)
		}
		s.skipWhitespace()
	}

	if s.eof() {
		return nil, s.errorf("banner missing hostname")
	}
	host := s.takeToken()

	s.skipWhitespace()
	if !s.eof() {
		return nil, s.errorf("unexpected text after banner hostname")
	}

	return &Banner{Node: host}, nil
}

// ParseNodeList validates a node list payload: one or more lines, each a
// single non-whitespace hostname token not beginning with '.', terminated by
// a line containing only '.'.
func ParseNodeList(text string) (*NodeList, error) {
	lines := strings.Split(text, "\n")
	var nodes []string
	terminated := false

	for i, ln := range lines {
		lineNo := i + 1
		if terminated {
			if ln != "" {
				return nil, NewDetailedParseError(lineNo, 0, ln, "unexpected content after node list terminator")
			}
			continue
		}
		switch {
		case ln == ".":
			terminated = true
		case ln == "":
			// A trailing newline before the terminator check is handled
			// below; an empty line inside the list is a bad node token.
			if i == len(lines)-1 {
				continue
			}
			return nil, NewParseError(lineNo, "empty node name")
		case strings.HasPrefix(ln, "."):
			return nil, NewDetailedParseError(lineNo, 0, ln, "node name must not begin with '.'")
		case strings.ContainsAny(ln, " \t"):
			return nil, NewDetailedParseError(lineNo, 0, ln, "node name must be a single token")
		default:
			nodes = append(nodes, ln)
		}
	}

	if !terminated {
		return nil, NewParseError(len(lines), "node list missing '.' terminator")
	}
	if len(nodes) == 0 {
		return nil, NewParseError(1, "node list must contain at least one node")
	}

	return &NodeList{Nodes: nodes}, nil
}

// ParseCapabilityList validates a capability response of the form
//
//	cap <cap1> <cap2> ...
//
// with one or more alphabetic capability tokens. The keyword follows the
// same exactness rule as the request form.
func ParseCapabilityList(text string) (*CapabilityList, error) {
	s := newScanner(strings.TrimSpace(text))

	keyword := s.takeToken()
	if keyword != "cap" {
		return nil, s.errorAt(0, "expected \"cap\" keyword, got %q", keyword)
	}

	caps, perr := s.requestArgs(isAlpha, "capability")
	if perr != nil {
		return nil, perr
	}
	if len(caps) == 0 {
		return nil, s.errorf("capability response requires at least one capability")
	}

	return &CapabilityList{Capabilities: caps}, nil
}

// ParsePluginList validates a plugin list payload: zero or more identifiers
// (a letter followed by letters or digits) separated by whitespace. An empty
// payload is a valid, empty list.
func ParsePluginList(text string) (*PluginList, error) {
	s := newScanner(text)
	plugins := []string{}

	for {
		s.skipWhitespace()
		if s.eof() {
			return &PluginList{Plugins: plugins}, nil
		}
		start := s.col
		tok := s.takeToken()
		if !isIdentifier(tok) {
			return nil, s.errorAt(start, "invalid plugin name %q", tok)
		}
		plugins = append(plugins, tok)
	}
}

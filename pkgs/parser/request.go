package parser

import "strings"

// Request is the structured result of a successfully parsed request line.
// It is immutable once produced: parsing the same line twice yields two
// independent records with identical field values.
type Request struct {
	Command   Command  // the parsed command
	Args      []string // ordered arguments, possibly empty
	Statement string   // the trimmed input; re-rendering it reproduces the normalized line
}

// String returns the normalized request text.
func (r *Request) String() string {
	return r.Statement
}

// ParseRequest validates a single master request line against the request
// grammar and extracts its command and arguments. Surrounding whitespace is
// ignored; everything else is anchored, so partial commands, unknown
// commands and trailing garbage all fail.
//
// Accepted forms:
//
//	cap <cap1> <cap2> ...
//	list [<hostname>]
//	nodes | quit | help
//	config <plugin>
//	fetch <plugin>
//	spoolfetch <timestamp>
func ParseRequest(line string) (*Request, error) {
	stmt := strings.TrimSpace(line)
	s := newScanner(stmt)

	if s.eof() {
		return nil, NewParseError(1, "empty request line")
	}

	keyword := s.takeToken()
	cmd, ok := LookupCommand(keyword)
	if !ok {
		return nil, s.errorAt(0, "unknown command %q", keyword)
	}

	var args []string
	var perr *ParseError

	switch cmd {
	case CmdCap:
		args, perr = s.requestArgs(isAlpha, "capability")
		if perr == nil && len(args) == 0 {
			perr = s.errorf("cap requires at least one capability")
		}

	case CmdList:
		args, perr = s.requestArgs(anyByte, "hostname")
		if perr == nil && len(args) > 1 {
			perr = s.errorf("list takes at most one hostname")
		}

	case CmdNodes, CmdQuit, CmdHelp:
		s.skipWhitespace()
		if !s.eof() {
			perr = s.errorf("%s takes no arguments", keyword)
		}

	case CmdConfig, CmdFetch:
		args, perr = s.requestArgs(isAlpha, "plugin name")
		if perr == nil && len(args) != 1 {
			perr = s.errorf("%s requires exactly one plugin name", keyword)
		}

	case CmdSpoolfetch:
		args, perr = s.requestArgs(isDigit, "timestamp")
		if perr == nil && len(args) != 1 {
			perr = s.errorf("spoolfetch requires exactly one timestamp")
		}
	}

	if perr != nil {
		return nil, perr
	}

	return &Request{Command: cmd, Args: args, Statement: stmt}, nil
}

// requestArgs reads whitespace-separated argument tokens up to the end of
// the line, requiring every byte of each token to satisfy class.
func (s *scanner) requestArgs(class func(byte) bool, what string) ([]string, *ParseError) {
	var args []string
	for {
		s.skipWhitespace()
		if s.eof() {
			return args, nil
		}
		start := s.col
		tok := s.takeToken()
		if !isWord(tok, class) {
			return nil, s.errorAt(start, "invalid %s %q", what, tok)
		}
		args = append(args, tok)
	}
}

// anyByte accepts every byte; used for arguments that may be any
// non-whitespace token.
func anyByte(byte) bool {
	return true
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/munin-go/muninproto/pkgs/parser"
	"github.com/munin-go/muninproto/pkgs/protocol"
)

// blockKinds names the pending requests whose responses are multi-line
// blocks framed by a '.' terminator line. Everything else answers with a
// single-line payload.
var blockKinds = map[parser.Command]bool{
	parser.CmdNodes:      true,
	parser.CmdConfig:     true,
	parser.CmdFetch:      true,
	parser.CmdSpoolfetch: true,
}

// noResponseKinds names the pending requests the node never answers.
// Feeding a payload in these states would violate the Handler contract, so
// the repl refuses before calling ParseResponse.
var noResponseKinds = map[parser.Command]bool{
	parser.CmdQuit: true,
	parser.CmdHelp: true,
}

type repl struct {
	handler     *protocol.Handler
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
	useColor    bool
}

func newRepl(in io.Reader, out io.Writer, interactive, useColor bool) *repl {
	return &repl{
		handler:     protocol.New(),
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
		useColor:    useColor,
	}
}

func (r *repl) run() error {
	if r.interactive {
		fmt.Fprintln(r.out, "muninproto decoder; \\response feeds the pending response, \\quit leaves")
	}

	for {
		r.prompt()
		if !r.in.Scan() {
			return r.in.Err()
		}
		line := r.in.Text()

		switch {
		case strings.TrimSpace(line) == "":
			continue
		case line == `\quit`:
			return nil
		case line == `\session`:
			fmt.Fprintln(r.out, renderSession(r.handler))
		case line == `\response`:
			r.parseResponse()
		case strings.HasPrefix(line, `\`):
			r.errorf("unknown directive %s (try \\response, \\session or \\quit)", line)
		default:
			r.parseRequest(line)
		}
	}
}

func (r *repl) parseRequest(line string) {
	req, err := r.handler.ParseRequest(line)
	if err != nil {
		r.errorf("%v", err)
		r.suggest(line)
		return
	}
	fmt.Fprintln(r.out, Colorize(renderRequest(req), ColorGreen, r.useColor))
}

// parseResponse collects the payload for the pending request and runs it
// through the handler. Block responses are typed line by line and closed
// with a lone '.'; single-line responses take the next line as-is.
func (r *repl) parseResponse() {
	pending := r.handler.Pending()
	if noResponseKinds[pending] {
		r.errorf("%s has no response; send another request first", pending)
		return
	}

	payload, ok := r.collectPayload(pending)
	if !ok {
		return
	}

	resp, err := r.handler.ParseResponse(payload)
	if err != nil {
		r.errorf("%v", err)
		return
	}
	fmt.Fprintln(r.out, Colorize(renderResponse(resp), ColorCyan, r.useColor))
}

func (r *repl) collectPayload(pending parser.Command) (string, bool) {
	if !blockKinds[pending] {
		if r.interactive {
			fmt.Fprintf(r.out, "%s payload: ", pending)
		}
		if !r.in.Scan() {
			r.errorf("input ended while reading %s payload", pending)
			return "", false
		}
		return r.in.Text(), true
	}

	if r.interactive {
		fmt.Fprintf(r.out, "%s payload, end with a lone '.':\n", pending)
	}
	var b strings.Builder
	for {
		if !r.in.Scan() {
			r.errorf("input ended before the '.' terminator")
			return "", false
		}
		line := r.in.Text()
		b.WriteString(line)
		b.WriteByte('\n')
		if line == "." {
			return b.String(), true
		}
	}
}

// suggest prints nearest-command hints when the rejected line led with an
// unrecognized keyword.
func (r *repl) suggest(line string) {
	keyword := strings.Fields(strings.TrimSpace(line))
	if len(keyword) == 0 {
		return
	}
	if _, known := parser.LookupCommand(keyword[0]); known {
		return
	}
	if matches := parser.SuggestCommand(keyword[0]); len(matches) > 0 {
		hint := fmt.Sprintf("did you mean %s?", strings.Join(matches, ", "))
		fmt.Fprintln(r.out, Colorize(hint, ColorGray, r.useColor))
	}
}

func (r *repl) prompt() {
	if r.interactive {
		fmt.Fprint(r.out, Colorize("munin> ", ColorYellow, r.useColor))
	}
}

func (r *repl) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.out, Colorize("error: "+msg, ColorRed, r.useColor))
}

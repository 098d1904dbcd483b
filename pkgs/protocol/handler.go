// Package protocol implements the stateful side of the munin master/node
// exchange: a Handler parses master request lines and node response payloads
// through the grammars in pkgs/parser, dispatching each response to the
// grammar registered for the pending request and folding the results into
// its session state.
//
// A Handler models exactly one logical session and is not safe for
// concurrent use; callers speaking to several nodes at once create one
// Handler per session.
package protocol

import (
	"github.com/munin-go/muninproto/pkgs/invariant"
	"github.com/munin-go/muninproto/pkgs/parser"
)

// responseGrammar validates one kind of response payload.
type responseGrammar func(text string) (parser.Response, error)

// responseGrammars maps a pending request command to the grammar its
// response must satisfy. The table is fixed: quit and help are deliberately
// absent because the node never answers them, and asking a Handler to parse
// a response in those states is caller misuse, not bad wire data.
var responseGrammars = map[parser.Command]responseGrammar{
	parser.CmdBanner: func(text string) (parser.Response, error) { return parser.ParseBanner(text) },
	parser.CmdCap:    func(text string) (parser.Response, error) { return parser.ParseCapabilityList(text) },
	parser.CmdNodes:  func(text string) (parser.Response, error) { return parser.ParseNodeList(text) },
	parser.CmdList:   func(text string) (parser.Response, error) { return parser.ParsePluginList(text) },
	parser.CmdConfig: func(text string) (parser.Response, error) { return parser.ParseConfigBlock(text) },
	parser.CmdFetch:  func(text string) (parser.Response, error) { return parser.ParseValueBlock(text) },
	// spoolfetch replays spooled samples in the fetch wire shape
	parser.CmdSpoolfetch: func(text string) (parser.Response, error) { return parser.ParseValueBlock(text) },
}

// Handler is the protocol façade: it owns the session state and decides
// which response grammar applies next. The zero value is not usable; create
// Handlers with New.
type Handler struct {
	session session
}

// New returns a Handler for a fresh session. The first expected message is
// the node's banner.
func New() *Handler {
	return &Handler{session: session{pending: parser.CmdBanner}}
}

// ParseRequest runs the request grammar over one master line. On success the
// parsed command becomes the pending request and the record is returned; on
// failure the session, including the pending request, is left untouched.
func (h *Handler) ParseRequest(line string) (*parser.Request, error) {
	req, err := parser.ParseRequest(line)
	if err != nil {
		return nil, err
	}
	h.session.pending = req.Command
	return req, nil
}

// ParseResponse runs the response grammar registered for the pending request
// over a complete response payload. On success the session absorbs the
// response's relevant fields (banner hostname, node list, capabilities) and
// the record is returned; on failure nothing is committed.
//
// Calling ParseResponse while quit or help is pending panics: those commands
// have no response, so the call is a programming error in the caller, kept
// loudly distinct from a grammar mismatch in wire data.
func (h *Handler) ParseResponse(text string) (parser.Response, error) {
	grammar, ok := responseGrammars[h.session.pending]
	invariant.Precondition(ok, "no response grammar registered for pending request %q", h.session.pending)

	resp, err := grammar(text)
	if err != nil {
		return nil, err
	}
	h.session.fold(resp, text)
	return resp, nil
}

// Pending returns the command of the most recently accepted request, or
// CmdBanner before any request has been accepted.
func (h *Handler) Pending() parser.Command {
	return h.session.pending
}

// Node returns the hostname announced by the node's banner, or "" before the
// banner has been parsed.
func (h *Handler) Node() string {
	return h.session.node
}

// Nodes returns a copy of the hostnames from the last accepted node list.
func (h *Handler) Nodes() []string {
	return append([]string(nil), h.session.nodes...)
}

// Capabilities returns a copy of the capabilities negotiated via the last
// accepted cap response.
func (h *Handler) Capabilities() []string {
	return append([]string(nil), h.session.capabilities...)
}

// LastResponse returns the raw text of the last accepted response payload.
func (h *Handler) LastResponse() string {
	return h.session.lastResponse
}

package protocol

import "github.com/munin-go/muninproto/pkgs/parser"

// session is the mutable per-connection state owned exclusively by a
// Handler. Nothing outside this package reads or writes it directly; all
// observation happens through the Handler's accessors, which return copies.
type session struct {
	pending      parser.Command // command of the most recently accepted request
	node         string         // hostname announced in the banner
	nodes        []string       // hostnames from the last node list
	capabilities []string       // capabilities from the last cap response
	lastResponse string         // raw text of the last accepted response
}

// fold commits the state effects of an accepted response. Only banner, node
// list and capability responses carry session-relevant fields; every
// accepted response updates the raw last-response text.
func (st *session) fold(resp parser.Response, raw string) {
	switch r := resp.(type) {
	case *parser.Banner:
		st.node = r.Node
	case *parser.NodeList:
		st.nodes = append([]string(nil), r.Nodes...)
	case *parser.CapabilityList:
		st.capabilities = append([]string(nil), r.Capabilities...)
	}
	st.lastResponse = raw
}

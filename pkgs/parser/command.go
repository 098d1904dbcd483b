package parser

import "fmt"

// Command represents a master-issued protocol command.
//
// CmdBanner is not a real command: it names the state a session is in before
// the first request has been accepted, when the next expected message is the
// node's greeting banner. The request grammar never produces it.
type Command int

const (
	CmdBanner Command = iota

	CmdCap        // cap <cap1> <cap2> ...
	CmdList       // list [<hostname>]
	CmdNodes      // nodes
	CmdQuit       // quit
	CmdHelp       // help
	CmdConfig     // config <plugin>
	CmdFetch      // fetch <plugin>
	CmdSpoolfetch // spoolfetch <timestamp>
)

// Pre-computed command name lookup for fast debugging
var commandNames = [...]string{
	CmdBanner:     "banner",
	CmdCap:        "cap",
	CmdList:       "list",
	CmdNodes:      "nodes",
	CmdQuit:       "quit",
	CmdHelp:       "help",
	CmdConfig:     "config",
	CmdFetch:      "fetch",
	CmdSpoolfetch: "spoolfetch",
}

func (c Command) String() string {
	if int(c) < len(commandNames) && int(c) >= 0 {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// requestCommands maps a command keyword to its Command. Keywords match
// literally and case-sensitively; "banner" is deliberately absent.
var requestCommands = map[string]Command{
	"cap":        CmdCap,
	"list":       CmdList,
	"nodes":      CmdNodes,
	"quit":       CmdQuit,
	"help":       CmdHelp,
	"config":     CmdConfig,
	"fetch":      CmdFetch,
	"spoolfetch": CmdSpoolfetch,
}

// requestKeywords lists every accepted command keyword, in protocol order.
// Used for suggestions when a request line is rejected.
var requestKeywords = []string{
	"cap", "list", "nodes", "quit", "help", "config", "fetch", "spoolfetch",
}

// LookupCommand resolves a request keyword to its Command. The match is
// exact: prefixes and case variants are not commands.
func LookupCommand(keyword string) (Command, bool) {
	cmd, ok := requestCommands[keyword]
	return cmd, ok
}

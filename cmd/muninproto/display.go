package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/munin-go/muninproto/pkgs/parser"
	"github.com/munin-go/muninproto/pkgs/protocol"
)

// ANSI color constants
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Colorize wraps text in ANSI color codes if color is enabled
func Colorize(text, color string, useColor bool) string {
	if !useColor {
		return text
	}
	return color + text + ColorReset
}

// ShouldUseColor determines if color output should be used
// Respects --no-color flag and NO_COLOR environment variable
func ShouldUseColor(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	// Check if stdout is a terminal
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// renderRequest formats an accepted request record.
func renderRequest(req *parser.Request) string {
	if len(req.Args) == 0 {
		return fmt.Sprintf("accepted %s", req.Command)
	}
	return fmt.Sprintf("accepted %s [%s]", req.Command, strings.Join(req.Args, " "))
}

// renderResponse formats a parsed response record as a short summary.
func renderResponse(resp parser.Response) string {
	switch r := resp.(type) {
	case *parser.Banner:
		return fmt.Sprintf("banner from node %s", r.Node)
	case *parser.NodeList:
		return fmt.Sprintf("nodes: %s", strings.Join(r.Nodes, ", "))
	case *parser.CapabilityList:
		return fmt.Sprintf("capabilities: %s", strings.Join(r.Capabilities, ", "))
	case *parser.PluginList:
		if len(r.Plugins) == 0 {
			return "plugins: (none)"
		}
		return fmt.Sprintf("plugins: %s", strings.Join(r.Plugins, ", "))
	case *parser.ConfigBlock:
		return renderConfigBlock(r)
	case *parser.ValueBlock:
		return renderValueBlock(r)
	default:
		return fmt.Sprintf("%#v", resp)
	}
}

func renderConfigBlock(block *parser.ConfigBlock) string {
	var b strings.Builder
	b.WriteString("config:")
	if block.HasUpdateRate {
		fmt.Fprintf(&b, "\n  update_rate %d", block.UpdateRate)
	}
	for _, attr := range sortedKeys(block.GraphAttributes) {
		fmt.Fprintf(&b, "\n  %s = %s", attr, block.GraphAttributes[attr])
	}
	fields := make([]string, 0, len(block.PerField))
	for field := range block.PerField {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		attrs := block.PerField[field]
		for _, attr := range sortedKeys(attrs) {
			fmt.Fprintf(&b, "\n  %s.%s = %s", field, attr, attrs[attr])
		}
	}
	return b.String()
}

func renderValueBlock(block *parser.ValueBlock) string {
	var b strings.Builder
	b.WriteString("values:")
	fields := make([]string, 0, len(block.Values))
	for field := range block.Values {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		val := block.Values[field]
		if val.Unknown {
			fmt.Fprintf(&b, "\n  %s = unknown", field)
		} else {
			fmt.Fprintf(&b, "\n  %s = %g", field, val.Number)
		}
	}
	return b.String()
}

// renderSession formats the accumulated session state.
func renderSession(h *protocol.Handler) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pending:      %s", h.Pending())
	fmt.Fprintf(&b, "\nnode:         %s", orNone(h.Node()))
	fmt.Fprintf(&b, "\nnodes:        %s", orNone(strings.Join(h.Nodes(), ", ")))
	fmt.Fprintf(&b, "\ncapabilities: %s", orNone(strings.Join(h.Capabilities(), ", ")))
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBanner(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "canonical banner",
			input: "# munin node at test1.example.com",
			want:  "test1.example.com",
		},
		{
			name:  "whitespace tolerant across newlines and tabs",
			input: "# munin \nnode  at\ttest1.example.com",
			want:  "test1.example.com",
		},
		{
			name:  "trailing newline",
			input: "# munin node at test1.example.com\n",
			want:  "test1.example.com",
		},
		{
			name:    "missing hash",
			input:   "munin node at test1.example.com\n",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			input:   "# munin node at test1.example.com something extra",
			wantErr: true,
		},
		{
			name:    "leading garbage",
			input:   "a# munin node at test1.example.com",
			wantErr: true,
		},
		{
			name:    "misspelled word",
			input:   "# munin peer at test1.example.com",
			wantErr: true,
		},
		{
			name:    "missing hostname",
			input:   "# munin node at",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBanner(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBanner(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBanner(%q) returned error: %v", tt.input, err)
			}
			if got.Node != tt.want {
				t.Errorf("Node = %q, want %q", got.Node, tt.want)
			}
		})
	}
}

func TestParseNodeList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "two nodes",
			input: "node1.example.com\nnode2.example.com\n.\n",
			want:  []string{"node1.example.com", "node2.example.com"},
		},
		{
			name:  "single node without trailing newline after terminator",
			input: "node1.example.com\n.",
			want:  []string{"node1.example.com"},
		},
		{
			name:    "missing terminator",
			input:   "node1.example.com\nnode2.example.com\n",
			wantErr: true,
		},
		{
			name:    "terminator only",
			input:   ".\n",
			wantErr: true,
		},
		{
			name:    "node beginning with dot",
			input:   ".hidden.example.com\n.\n",
			wantErr: true,
		},
		{
			name:    "node with embedded whitespace",
			input:   "node1 example com\n.\n",
			wantErr: true,
		},
		{
			name:    "empty node line",
			input:   "node1.example.com\n\nnode2.example.com\n.\n",
			wantErr: true,
		},
		{
			name:    "content after terminator",
			input:   "node1.example.com\n.\nnode2.example.com\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNodeList(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseNodeList(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNodeList(%q) returned error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got.Nodes); diff != "" {
				t.Errorf("nodes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCapabilityList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "two capabilities with trailing newline",
			input: "cap multigraph dirtyconfig\n",
			want:  []string{"multigraph", "dirtyconfig"},
		},
		{
			name:  "single capability",
			input: "cap multigraph",
			want:  []string{"multigraph"},
		},
		{
			name:    "keyword only",
			input:   "cap\n",
			wantErr: true,
		},
		{
			name:    "wrong keyword",
			input:   "caps multigraph",
			wantErr: true,
		},
		{
			name:    "case sensitive keyword",
			input:   "CAP multigraph",
			wantErr: true,
		},
		{
			name:    "non-alphabetic capability",
			input:   "cap multi_graph",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCapabilityList(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCapabilityList(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCapabilityList(%q) returned error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got.Capabilities); diff != "" {
				t.Errorf("capabilities mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePluginList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "several plugins",
			input: "cpu load memory df\n",
			want:  []string{"cpu", "load", "memory", "df"},
		},
		{
			name:  "plugin with digits",
			input: "disk2\n",
			want:  []string{"disk2"},
		},
		{
			name:  "empty list is valid",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only is an empty list",
			input: " \n",
			want:  []string{},
		},
		{
			name:    "identifier starting with digit",
			input:   "9plug\n",
			wantErr: true,
		},
		{
			name:    "identifier with punctuation",
			input:   "cpu load.avg\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePluginList(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePluginList(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePluginList(%q) returned error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got.Plugins); diff != "" {
				t.Errorf("plugins mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrorFormatting(t *testing.T) {
	_, err := ParseBanner("# munin peer at test1.example.com")
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Context == "" {
		t.Error("expected the offending line as context")
	}
	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1", perr.Line)
	}
}

package main

import (
	"strings"
	"testing"
)

func TestReplSession(t *testing.T) {
	script := strings.Join([]string{
		`\response`,
		"# munin node at test1.example.com",
		"nodes",
		`\response`,
		"foo.example.com",
		"bar.example.com",
		".",
		`\session`,
		"fetc load",
		"quit",
		`\response`,
		`\quit`,
	}, "\n") + "\n"

	var out strings.Builder
	r := newRepl(strings.NewReader(script), &out, false, false)
	if err := r.run(); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"banner from node test1.example.com",
		"accepted nodes",
		"nodes: foo.example.com, bar.example.com",
		"node:         test1.example.com",
		"did you mean fetch",
		"quit has no response",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestReplRejectsUnknownDirective(t *testing.T) {
	var out strings.Builder
	r := newRepl(strings.NewReader("\\frobnicate\n\\quit\n"), &out, false, false)
	if err := r.run(); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "unknown directive") {
		t.Errorf("output missing directive error:\n%s", out.String())
	}
}

func TestReplEndsAtEOF(t *testing.T) {
	var out strings.Builder
	r := newRepl(strings.NewReader("nodes\n"), &out, false, false)
	if err := r.run(); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "accepted nodes") {
		t.Errorf("output missing accepted request:\n%s", out.String())
	}
}

package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	mdwlog "github.com/msto63/whilec/foundation/core/log"
	"github.com/msto63/whilec/foundation/while"
	"github.com/msto63/whilec/foundation/while/ast"
)

func parse(t *testing.T, input string) *while.Result {
	t.Helper()
	res, err := while.New(while.Options{Logger: mdwlog.Discard()}).Parse(context.Background(), input)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", input, err)
	}
	return res
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"TREE", FormatTree, false},
		{" json ", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"html", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTreeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"skip", "(start (stmt skip) <EOF>)"},
		{"L = n", "(start (stmt L   =   (numexpr n)) <EOF>)"},
		{"skip ; skip", "(start (stmt (stmt skip)   ;   (stmt skip)) <EOF>)"},
		{"while ~true do skip", "(start (stmt while   (boolexpr ~ (boolexpr true))   do   (stmt skip)) <EOF>)"},
		{"L = (L+n)", "(start (stmt L   =   (numexpr ( (numexpr L) + (numexpr n) ))) <EOF>)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TreeString(parse(t, tt.input).Tree); got != tt.want {
				t.Errorf("TreeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToDoc(t *testing.T) {
	doc := ToDoc(parse(t, "skip").Tree)

	want := &Doc{
		Rule: "start",
		Alt:  "program",
		Children: []*Doc{
			{Rule: "stmt", Alt: "skip", Children: []*Doc{
				{Kind: "'skip'", Text: "skip", Line: 1, Column: 1},
			}},
			{Kind: "EOF", Line: 1, Column: 5},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("Unexpected document (-want +got):\n%s", diff)
	}
}

func TestJSONAndYAML(t *testing.T) {
	tree := parse(t, "if true then skip else L = n").Tree
	want := ToDoc(tree)

	data, err := JSON(tree)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	var fromJSON Doc
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if diff := cmp.Diff(want, &fromJSON); diff != "" {
		t.Errorf("JSON document differs (-want +got):\n%s", diff)
	}

	data, err = YAML(tree)
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	var fromYAML Doc
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("Invalid YAML: %v", err)
	}
	if diff := cmp.Diff(want, &fromYAML); diff != "" {
		t.Errorf("YAML document differs (-want +got):\n%s", diff)
	}
}

func TestRenderer_TextTree(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	if err := r.Tree(parse(t, "skip ; skip").Tree, FormatText); err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"start:program", "stmt:seq", "stmt:skip", "'skip'", "';'", "SPACE", "EOF", "└──"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Disabled colors must not emit escape sequences")
	}
	// start, seq, 2 x (stmt + leaf), 3 operator leaves, EOF
	if lines := strings.Count(strings.TrimRight(out, "\n"), "\n") + 1; lines != 10 {
		t.Errorf("Expected 10 lines, got %d:\n%s", lines, out)
	}
}

func TestRenderer_Formats(t *testing.T) {
	tree := parse(t, "skip").Tree

	tests := []struct {
		format Format
		check  func(t *testing.T, out string)
	}{
		{FormatTree, func(t *testing.T, out string) {
			if out != "(start (stmt skip) <EOF>)\n" {
				t.Errorf("Unexpected tree output %q", out)
			}
		}},
		{FormatJSON, func(t *testing.T, out string) {
			if !strings.HasPrefix(out, "{\n") || !strings.Contains(out, `"alt": "program"`) {
				t.Errorf("Unexpected JSON output:\n%s", out)
			}
		}},
		{FormatYAML, func(t *testing.T, out string) {
			if !strings.HasPrefix(out, "rule: start\n") || strings.HasSuffix(out, "\n\n") {
				t.Errorf("Unexpected YAML output:\n%s", out)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(&buf, false).Tree(tree, tt.format); err != nil {
				t.Fatalf("Tree() error = %v", err)
			}
			tt.check(t, buf.String())
		})
	}

	if err := New(&bytes.Buffer{}, false).Tree(tree, Format("html")); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestRenderer_Tokens(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, false).Tokens(parse(t, "L = n").Tokens); err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"KIND", "'L'", "SPACE", "'='", "'n'", "EOF", `" "`, "1:5"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in token table:\n%s", want, out)
		}
	}
}

func TestRenderer_EventsAndVerdict(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	rec := ast.NewRecorder()
	ast.Walk(rec, parse(t, "skip").Tree)
	if err := r.Events(rec.Events); err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != len(rec.Events) {
		t.Errorf("Expected %d event lines, got %d", len(rec.Events), got)
	}

	buf.Reset()
	r.Verdict(true, "ignored")
	r.Verdict(false, "syntax error at 1:5")
	if buf.String() != "accepted\nrejected syntax error at 1:5\n" {
		t.Errorf("Unexpected verdict output %q", buf.String())
	}
}

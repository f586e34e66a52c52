package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	mdwerror "github.com/msto63/whilec/foundation/core/error"
)

// execute runs the CLI with fresh flag state and returns stdout and stderr
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WHILEC_CONFIG", "")
	t.Setenv("WHILEC_STORE_PATH", "")
	t.Setenv("WHILEC_LOG_LEVEL", "")
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeProgram(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.while")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  func(t *testing.T) []string
		check func(t *testing.T, out string)
	}{
		{
			name: "literal program as tree",
			args: func(t *testing.T) []string { return []string{"parse", "--format", "tree", "skip"} },
			check: func(t *testing.T, out string) {
				if out != "(start (stmt skip) <EOF>)\n" {
					t.Errorf("Unexpected output %q", out)
				}
			},
		},
		{
			name: "file with trailing newline",
			args: func(t *testing.T) []string {
				return []string{"parse", "-f", "tree", writeProgram(t, "L = n\n")}
			},
			check: func(t *testing.T, out string) {
				if out != "(start (stmt L   =   (numexpr n)) <EOF>)\n" {
					t.Errorf("Unexpected output %q", out)
				}
			},
		},
		{
			name:  "stdin as json",
			stdin: "skip ; skip\r\n",
			args:  func(t *testing.T) []string { return []string{"parse", "--format", "json", "-"} },
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, `"alt": "seq"`) {
					t.Errorf("Expected seq node in JSON:\n%s", out)
				}
			},
		},
		{
			name: "default text format",
			args: func(t *testing.T) []string { return []string{"parse", "while true do skip"} },
			check: func(t *testing.T, out string) {
				if !strings.HasPrefix(out, "start:program\n") || !strings.Contains(out, "stmt:while") {
					t.Errorf("Unexpected text tree:\n%s", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.stdin, tt.args(t)...)
			if err != nil {
				t.Fatalf("parse failed: %v (stderr %q)", err, errOut)
			}
			tt.check(t, out)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	_, errOut, err := execute(t, "", "parse", "L = ")
	if !mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		t.Fatalf("Expected WHILE_SYNTAX, got %v", err)
	}
	if !strings.HasPrefix(errOut, "Fehler: ") || !strings.Contains(errOut, "expected {'L', 'n', '('}") {
		t.Errorf("Unexpected stderr %q", errOut)
	}

	if _, _, err := execute(t, "", "parse", "--format", "html", "skip"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestCheckCommand(t *testing.T) {
	out, _, err := execute(t, "", "check", "skip ; skip")
	if err != nil || out != "accepted\n" {
		t.Errorf("check accepted input: out=%q err=%v", out, err)
	}

	out, errOut, err := execute(t, "", "check", "skip", "skip skip", "--stats")
	if !errors.Is(err, errRejected) {
		t.Fatalf("Expected rejection, got %v", err)
	}
	if errOut != "" {
		t.Errorf("Rejection must not print an error, got %q", errOut)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 output lines, got %q", out)
	}
	if lines[0] != "<args>: accepted" || !strings.HasPrefix(lines[1], "<args>: rejected ") {
		t.Errorf("Unexpected verdict lines: %q", lines[:2])
	}
	if lines[2] != "calls=2 parses=2 cache_hits=0 store_hits=0 accepted=1 rejected=1" {
		t.Errorf("Unexpected stats line %q", lines[2])
	}

	out, _, err = execute(t, "", "check", "-q", "L = x")
	if !errors.Is(err, errRejected) || out != "" {
		t.Errorf("Quiet rejection: out=%q err=%v", out, err)
	}
}

func TestCheckCommand_PersistsVerdicts(t *testing.T) {
	db := filepath.Join(t.TempDir(), "verdicts.db")

	if _, _, err := execute(t, "", "check", "--cache-db", db, "skip", "skip skip"); !errors.Is(err, errRejected) {
		t.Fatalf("Expected rejection, got %v", err)
	}

	out, _, err := execute(t, "", "check", "--cache-db", db, "--stats", "-q", "skip")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "parses=0") || !strings.Contains(out, "store_hits=1") {
		t.Errorf("Expected verdict from store, got %q", out)
	}

	out, _, err = execute(t, "", "verdicts", "stats", "--cache-db", db)
	if err != nil {
		t.Fatalf("verdicts stats failed: %v", err)
	}
	for _, want := range []string{"Verdikte:    2", "accepted:  1", "rejected:  1", "WHILE_SYNTAX:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in stats:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "", "verdicts", "prune", "--cache-db", db, "--older-than", "1h")
	if err != nil || out != "0 Verdikte entfernt\n" {
		t.Errorf("prune: out=%q err=%v", out, err)
	}

	if _, _, err := execute(t, "", "verdicts", "stats"); !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("Expected CONFIG_ERROR without store, got %v", err)
	}
}

func TestTokensCommand(t *testing.T) {
	out, _, err := execute(t, "", "tokens", "L = n")
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	for _, want := range []string{"'L'", "SPACE", "'='", "'n'", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in table:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "", "tokens", "L = x")
	if !mdwerror.HasCode(err, mdwerror.CodeLexical) {
		t.Errorf("Expected WHILE_LEXICAL, got %v", err)
	}
	if !strings.Contains(out, "<INVALID>") {
		t.Errorf("Expected invalid token in table:\n%s", out)
	}
}

func TestEventsCommand(t *testing.T) {
	out, _, err := execute(t, "", "events", "skip")
	if err != nil {
		t.Fatalf("events failed: %v", err)
	}
	want := "enter start:program\nenter stmt:skip\nterminal 'skip'\nexit stmt:skip\nterminal EOF\nexit start:program\n"
	if out != want {
		t.Errorf("Unexpected events:\n%s", out)
	}

	out, _, err = execute(t, "", "events", "--generic", "skip")
	if err != nil || !strings.HasPrefix(out, "enter-any start\n") {
		t.Errorf("Expected generic events, got %q (%v)", out, err)
	}

	out, _, err = execute(t, "", "events", "skip ; L = ")
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if out != "enter start:program\nerror EOF\n" {
		t.Errorf("Unexpected error events %q", out)
	}
}

func TestConfigAndVersionCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "whilec.yaml")
	if err := os.WriteFile(cfgPath, []byte("parser:\n  max_depth: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "--config", cfgPath, "config")
	if err != nil || !strings.Contains(out, "max_depth = 7") {
		t.Errorf("config: out=%q err=%v", out, err)
	}

	out, _, err = execute(t, "", "version")
	if err != nil || !strings.HasPrefix(out, "whilec v") || !strings.Contains(out, "Grammatik:") {
		t.Errorf("version: out=%q err=%v", out, err)
	}

	out, _, _ = execute(t, "", "version", "--short")
	if strings.Count(out, "\n") != 1 || strings.Contains(out, "whilec") {
		t.Errorf("version --short: out=%q", out)
	}
}

func TestReadInput_TrimNewline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"skip\n", "skip"},
		{"skip\r\n", "skip"},
		{"skip\n\n", "skip\n"},
		{"skip", "skip"},
	}

	for _, tt := range tests {
		if got := trimNewline(tt.input); got != tt.want {
			t.Errorf("trimNewline(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

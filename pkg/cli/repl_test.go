package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runSession(input string) (string, string, error) {
	var out, errOut bytes.Buffer
	s := NewSession(strings.NewReader(input), &out, &errOut, "> ", false)
	err := s.Run()
	return out.String(), errOut.String(), err
}

func TestChunkComplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"print(1);", true},
		{"print(1)", false},
		{"if (true) {", false},
		{"if (true) {\n print(1);\n}", true},
		{"while (x < 3) { x = x + 1; }", true},
		{`print("{");`, true},
		{`print("\"{");`, true},
		{"{ { }", false},
		{"}", true},
	}
	for _, tt := range tests {
		if got := chunkComplete(tt.src); got != tt.want {
			t.Errorf("chunkComplete(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestSessionPersistsSymbols(t *testing.T) {
	out, errOut, err := runSession("var x : i32 = 20;\nx = x * 2;\nprint(x + 2);\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if errOut != "" {
		t.Errorf("stderr = %q", errOut)
	}
	if !strings.Contains(out, "42\n") {
		t.Errorf("stdout = %q", out)
	}
}

func TestSessionMultiLineEntry(t *testing.T) {
	out, _, err := runSession("if (1 < 2) {\n  print(\"yes\");\n} else {\n  print(\"no\");\n}\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, continuationPrompt) {
		t.Errorf("expected continuation prompt in %q", out)
	}
	if !strings.Contains(out, "yes\n") || strings.Contains(out, "no\n") {
		t.Errorf("stdout = %q", out)
	}
}

func TestSessionReadUsesFollowingLine(t *testing.T) {
	out, _, err := runSession("print(read() + 1);\n41\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "42\n") {
		t.Errorf("stdout = %q", out)
	}
}

func TestSessionContinuesAfterErrors(t *testing.T) {
	out, errOut, err := runSession("print(y);\nprint(1 / 0);\n:bogus\nprint(7);\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, want := range []string{"undeclared variable \"y\"", "division by zero", "unknown command :bogus"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut)
		}
	}
	if !strings.Contains(out, "7\n") {
		t.Errorf("stdout = %q", out)
	}
}

func TestSessionCommands(t *testing.T) {
	out, _, err := runSession(":symbols\nvar s : str = \"hi\";\n:symbols\n:reset\n:symbols\n:help\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Count(out, "Symbols: (empty)") != 2 {
		t.Errorf("expected two empty dumps:\n%s", out)
	}
	if !strings.Contains(out, `"hi"`) {
		t.Errorf("symbol dump missing value:\n%s", out)
	}
	if !strings.Contains(out, ":quit") {
		t.Errorf("help text missing:\n%s", out)
	}
}

func TestSessionIgnoresCommentOnlyEntries(t *testing.T) {
	out, errOut, err := runSession("// nothing here\n\nprint(1); // trailing\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if errOut != "" || !strings.Contains(out, "1\n") {
		t.Errorf("stdout = %q stderr = %q", out, errOut)
	}
}

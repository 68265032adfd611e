package buildinfo

import (
	"strings"
	"testing"
)

func TestUserAgent(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got, want := UserAgent(), "sekai-mcp-server/v1.2.3"; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.Contains(tmpl, "{{.Name}}") {
		t.Errorf("Template() should reference the command name: %q", tmpl)
	}
	if !strings.Contains(tmpl, Commit) {
		t.Errorf("Template() should include commit: %q", tmpl)
	}
}

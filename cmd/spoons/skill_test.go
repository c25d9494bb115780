// ABOUTME: Tests for the install-skill command.
// ABOUTME: Installs the embedded SKILL.md into a temp home directory.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstallSkillSkipConfirm(t *testing.T) {
	home := t.TempDir()
	var out bytes.Buffer

	if err := installSkill(strings.NewReader(""), &out, home, true); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	path := filepath.Join(home, ".claude", "skills", "spoons", "SKILL.md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("skill file not written: %v", err)
	}
	for _, want := range []string{"name: spoons", "## When to use spoons", "mcp__spoons__log_checkin"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("SKILL.md missing %q", want)
		}
	}
	if !strings.Contains(out.String(), "Installed spoons skill") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestInstallSkillPrompt(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		installed bool
	}{
		{"yes", "y\n", true},
		{"full yes", "YES\n", true},
		{"no", "n\n", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			var out bytes.Buffer

			if err := installSkill(strings.NewReader(tt.input), &out, home, false); err != nil {
				t.Fatalf("installSkill failed: %v", err)
			}

			_, err := os.Stat(filepath.Join(home, ".claude", "skills", "spoons", "SKILL.md"))
			if got := err == nil; got != tt.installed {
				t.Errorf("installed = %v, want %v\n%s", got, tt.installed, out.String())
			}
			if !tt.installed && !strings.Contains(out.String(), "Installation canceled.") {
				t.Errorf("expected cancel message, got: %s", out.String())
			}
		})
	}
}

func TestInstallSkillOverwriteNotice(t *testing.T) {
	home := t.TempDir()
	if err := installSkill(strings.NewReader(""), &bytes.Buffer{}, home, true); err != nil {
		t.Fatalf("first install failed: %v", err)
	}

	var out bytes.Buffer
	if err := installSkill(strings.NewReader(""), &out, home, true); err != nil {
		t.Fatalf("second install failed: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("expected overwrite notice, got: %s", out.String())
	}
}

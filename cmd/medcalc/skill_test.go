// ABOUTME: Tests for the install-skill command.
// ABOUTME: Installs into a temp home and checks prompt handling.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withSkipConfirm(t *testing.T, v bool) {
	t.Helper()
	orig := skillSkipConfirm
	skillSkipConfirm = v
	t.Cleanup(func() { skillSkipConfirm = orig })
}

func TestSkillInstallWritesEmbeddedContent(t *testing.T) {
	withSkipConfirm(t, true)
	home := t.TempDir()

	var out bytes.Buffer
	if err := installSkill(strings.NewReader(""), &out, home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	skillPath := filepath.Join(home, ".claude", "skills", "medcalc", "SKILL.md")
	got, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("skill file not written: %v", err)
	}
	want, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("read embedded skill: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Error("installed skill does not match embedded content")
	}
	if !strings.Contains(out.String(), "✓ Installed medcalc skill") {
		t.Errorf("expected success message, got:\n%s", out.String())
	}
}

func TestSkillEmbeddedFrontmatter(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("read embedded skill: %v", err)
	}
	s := string(content)
	if !strings.HasPrefix(s, "---\n") {
		t.Error("skill should start with frontmatter")
	}
	if !strings.Contains(s, "name: medcalc") {
		t.Error("skill frontmatter should name medcalc")
	}
}

func TestSkillInstallPrompt(t *testing.T) {
	withSkipConfirm(t, false)

	tests := []struct {
		name      string
		input     string
		installed bool
	}{
		{name: "yes", input: "y\n", installed: true},
		{name: "full yes", input: "YES\n", installed: true},
		{name: "no", input: "n\n", installed: false},
		{name: "empty line", input: "\n", installed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			var out bytes.Buffer
			if err := installSkill(strings.NewReader(tt.input), &out, home); err != nil {
				t.Fatalf("installSkill failed: %v", err)
			}
			_, err := os.Stat(filepath.Join(home, ".claude", "skills", "medcalc", "SKILL.md"))
			if got := err == nil; got != tt.installed {
				t.Errorf("installed = %v, want %v\n%s", got, tt.installed, out.String())
			}
			if !tt.installed && !strings.Contains(out.String(), "Installation canceled.") {
				t.Errorf("expected cancel message, got:\n%s", out.String())
			}
		})
	}
}

func TestSkillInstallOverwrite(t *testing.T) {
	withSkipConfirm(t, true)
	home := t.TempDir()
	skillDir := filepath.Join(home, ".claude", "skills", "medcalc")
	if err := os.MkdirAll(skillDir, 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := installSkill(strings.NewReader(""), &out, home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}
	if !strings.Contains(out.String(), "will be overwritten") {
		t.Errorf("expected overwrite note, got:\n%s", out.String())
	}
	got, _ := os.ReadFile(filepath.Join(skillDir, "SKILL.md"))
	if string(got) == "old" {
		t.Error("skill file was not replaced")
	}
}

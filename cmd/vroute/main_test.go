package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/vroute/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionShort(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version --short = %q, want %q", out, version)
	}
}

func TestMatchDemoTable(t *testing.T) {
	out, err := run(t, "match", "/profile/settings/delete")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}
	for _, want := range []string{"Profile", "ProfileSettings", "ProfileSettingsDelete", "/profile/settings/delete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMatchRoutesFile(t *testing.T) {
	dir := t.TempDir()
	routes := filepath.Join(dir, "routes.yaml")
	os.WriteFile(routes, []byte(`- name: users
  path: users/:id
  children:
    - name: post
      path: posts/:post
      exact: true
`), 0644)

	out, err := run(t, "match", "--json", "--routes", routes, "/users/3/posts/9")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}
	for _, want := range []string{`"name": "post"`, `"realpath": "users/3/posts/9"`, `"id": "3"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}

	out, err = run(t, "match", "--routes", routes, "/users/3/posts/9/comments")
	if err != nil {
		t.Fatalf("match error: %v", err)
	}
	if strings.Contains(out, "post ") {
		t.Errorf("exact child should not match a longer path:\n%s", out)
	}
}

func TestMatchErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`[{"path": "*rest/tail"}]`), 0644)

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"relative path", []string{"match", "about"}, "R004"},
		{"malformed pattern", []string{"match", "--routes", bad, "/x"}, "R002"},
		{"missing file", []string{"match", "--routes", filepath.Join(dir, "nope.json"), "/x"}, "R005"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			var re *errors.Error
			if !stderrors.As(err, &re) || re.Code != tt.code {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDemoNavigates(t *testing.T) {
	out, err := run(t, "demo", "--back", "1", "/about", "/profile/settings")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), out)
	}
	wants := []string{"Home", "About", "Profile > ProfileSettings > ProfileSettingsIndex", "About"}
	for i, want := range wants {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if !strings.HasPrefix(lines[3], "back") {
		t.Errorf("last line = %q, want a back step", lines[3])
	}
}

func TestSnapshotToDisk(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "snapshot", "--out", dir, "/", "/about")
	if err != nil {
		t.Fatalf("snapshot error: %v", err)
	}
	if !strings.Contains(out, filepath.Join(dir, "about", "index.html")) {
		t.Errorf("output missing about location:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "about", "index.html"))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "<title>About · vroute</title>") {
		t.Errorf("snapshot title missing:\n%s", data)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "vroute.yaml")
	os.WriteFile(cfgPath, []byte("initialPath: /about\nlogLevel: error\n"), 0644)

	out, err := run(t, "--config", cfgPath, "demo")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}
	if !strings.Contains(out, "About") {
		t.Errorf("demo should start at /about:\n%s", out)
	}

	if _, err := run(t, "--config", cfgPath, "--log-level", "chatty", "version"); err == nil {
		t.Error("invalid --log-level should fail")
	}
}

package match

import (
	"errors"
	"reflect"
	"testing"

	rerrors "github.com/vango-dev/vroute/internal/errors"
)

func TestCompileMalformed(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty param name", "user/:"},
		{"empty catch-all name", "files/*"},
		{"duplicate names", ":id/x/:id"},
		{"catch-all not last", "*rest/edit"},
		{"empty segment", "a//b"},
		{"optional syntax", "user/:id?"},
		{"group syntax", "(foo)"},
		{"nested marker", "::id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) should fail", tt.pattern)
			}
			if !errors.Is(err, ErrMalformedPattern) {
				t.Errorf("error %v should match ErrMalformedPattern", err)
			}
			var coded *rerrors.Error
			if !errors.As(err, &coded) || coded.Code != "R002" {
				t.Errorf("error %v should carry code R002", err)
			}
			var pe *PatternError
			if !errors.As(err, &pe) || pe.Pattern != tt.pattern {
				t.Errorf("error %v should carry the pattern", err)
			}
		})
	}
}

func TestCompileNames(t *testing.T) {
	p := MustCompile("/org/:org/repo/:repo/*path/")
	if got := p.Names(); !reflect.DeepEqual(got, []string{"org", "repo", "path"}) {
		t.Errorf("Names() = %v", got)
	}
	if p.String() != "/org/:org/repo/:repo/*path/" {
		t.Errorf("String() = %q", p.String())
	}
	if p.IsIndex() {
		t.Error("IsIndex() should be false")
	}
	if !MustCompile("").IsIndex() || !MustCompile("/").IsIndex() {
		t.Error(`"" and "/" should be index patterns`)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile should panic on a malformed pattern")
		}
	}()
	MustCompile(":")
}

func TestPatternMatch(t *testing.T) {
	tests := []struct {
		pattern     string
		path        string
		exact       bool
		wantOK      bool
		wantParams  map[string]string
		wantMatched string
	}{
		{"", "", false, true, map[string]string{}, ""},
		{"", "/", false, true, map[string]string{}, ""},
		{"", "about", false, false, nil, ""},
		{"about", "about", false, true, map[string]string{}, "about"},
		{"about", "/about/", false, true, map[string]string{}, "about"},
		{"about", "About", false, true, map[string]string{}, "About"},
		{"user/:id", "USER/Ab", false, true, map[string]string{"id": "Ab"}, "USER/Ab"},
		{"about", "abouts", false, false, nil, ""},
		{"user/:id", "user/42", false, true, map[string]string{"id": "42"}, "user/42"},
		{"user/:id", "user", false, false, nil, ""},
		{"user/:id", "user/a%20b", false, true, map[string]string{"id": "a b"}, "user/a%20b"},
		{"user/:id", "user/%zz", false, true, map[string]string{"id": "%zz"}, "user/%zz"},
		{"profile", "profile/settings", false, true, map[string]string{}, "profile"},
		{"profile", "profile/settings", true, false, nil, ""},
		{"files/*path", "files/a/b.txt", false, true, map[string]string{"path": "a/b.txt"}, "files/a/b.txt"},
		{"files/*path", "files", false, false, nil, ""},
		{":a/:b", "x/y/z", false, true, map[string]string{"a": "x", "b": "y"}, "x/y"},
	}

	for _, tt := range tests {
		params, matched, ok := MustCompile(tt.pattern).Match(tt.path, tt.exact)
		if ok != tt.wantOK {
			t.Errorf("%q.Match(%q, %v) ok = %v, want %v", tt.pattern, tt.path, tt.exact, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if !reflect.DeepEqual(params, tt.wantParams) {
			t.Errorf("%q.Match(%q) params = %v, want %v", tt.pattern, tt.path, params, tt.wantParams)
		}
		if matched != tt.wantMatched {
			t.Errorf("%q.Match(%q) matched = %q, want %q", tt.pattern, tt.path, matched, tt.wantMatched)
		}
	}
}

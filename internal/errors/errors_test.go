package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	for _, code := range GetAllCodes() {
		err := New(code)
		tmpl, ok := GetTemplate(code)
		if !ok {
			t.Fatalf("GetTemplate(%q) missing", code)
		}
		if err.Message != tmpl.Message {
			t.Errorf("New(%q).Message = %q, want %q", code, err.Message, tmpl.Message)
		}
		if err.Category != tmpl.Category {
			t.Errorf("New(%q).Category = %q, want %q", code, err.Category, tmpl.Category)
		}
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("R999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want %q", err.Message, "Unknown error")
	}
}

func TestErrorString(t *testing.T) {
	cause := stderrors.New("catch-all must be last")
	err := New("R002").WithSubject("*rest/tail").Wrap(cause)

	got := err.Error()
	want := `R002: Malformed path pattern: "*rest/tail": catch-all must be last`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrap(t *testing.T) {
	sentinel := stderrors.New("no router")
	err := New("R001").Wrap(sentinel)

	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}

	var re *Error
	if !stderrors.As(error(err), &re) {
		t.Fatal("errors.As should find *Error")
	}
	if re.Code != "R001" {
		t.Errorf("Code = %q, want R001", re.Code)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "R005") != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New("R003")
	if FromError(orig, "R005") != orig {
		t.Error("FromError should return an existing *Error unchanged")
	}

	wrapped := FromError(stderrors.New("boom"), "R005")
	if wrapped.Code != "R005" || wrapped.Wrapped == nil {
		t.Errorf("FromError = %+v, want code R005 with wrapped cause", wrapped)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("R001").WithSuggestion("Wrap the tree in router.BrowserRouter")
	out := err.Format()

	for _, want := range []string{"ERROR R001: Missing router context", "Hint: Wrap the tree"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	out := New("R004").WithSubject("").FormatJSON()
	if !strings.Contains(out, `"code":"R004"`) {
		t.Errorf("FormatJSON() = %s, want code field", out)
	}
	if strings.Contains(out, `"subject"`) {
		t.Errorf("FormatJSON() = %s, empty subject should be omitted", out)
	}
}

func TestPrintError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	PrintError(&buf, stderrors.New("plain"))
	if !strings.Contains(buf.String(), "ERROR: plain") {
		t.Errorf("PrintError(plain) = %q", buf.String())
	}

	buf.Reset()
	PrintError(&buf, New("R005"))
	if !strings.Contains(buf.String(), "R005") {
		t.Errorf("PrintError(coded) = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q longer than width", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six" {
		t.Errorf("wrapText lost words: %v", lines)
	}
}

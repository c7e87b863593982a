package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/vroute/pkg/vango"
	"github.com/vango-dev/vroute/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElementAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.A(
		vdom.Href("/users?id=1&x=\"2\""),
		vdom.Class("link"),
		vdom.Key("k"),
		vdom.Prop("hidden", false),
		vdom.Prop("disabled", true),
		vdom.OnClick(func() {}),
		"Users",
	)

	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<a class="link" disabled href="/users?id=1&amp;x=&quot;2&quot;">Users</a>`
	if html != want {
		t.Errorf("got  %q\nwant %q", html, want)
	}
}

func TestRenderVoidElement(t *testing.T) {
	html, err := NewRenderer(RendererConfig{}).RenderToString(vdom.Div(vdom.Br()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div><br></div>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderFragmentAndComponent(t *testing.T) {
	var cleaned bool
	comp := vdom.Func(func(owner *vango.Owner) *vdom.VNode {
		owner.OnCleanup(func() { cleaned = true })
		return vdom.Span("inner")
	})

	node := vdom.Fragment(vdom.P("a"), vdom.Comp(comp))
	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<p>a</p><span>inner</span>" {
		t.Errorf("got %q", html)
	}
	if !cleaned {
		t.Error("temporary render scope should be disposed")
	}
}

func TestRenderPretty(t *testing.T) {
	node := vdom.Div(vdom.P("x"))
	html, err := NewRenderer(RendererConfig{Pretty: true}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n  <p>\nx  </p>\n</div>\n"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Title: "About <us>",
		Body:  vdom.Main("hi"),
		Meta:  map[string]string{"route": "/about"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>About &lt;us&gt;</title>",
		`<meta name="route" content="/about">`,
		"<main>hi</main>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q:\n%s", want, out)
		}
	}
}

func TestEscapeAttrWhitespace(t *testing.T) {
	if got := escapeAttr("a\nb\tc"); got != "a&#10;b&#9;c" {
		t.Errorf("escapeAttr() = %q", got)
	}
}

package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/vroute/pkg/vdom"
)

// PageData describes a complete HTML document.
type PageData struct {
	// Body is the content of the <body> element.
	Body *vdom.VNode

	// Title is the document title.
	Title string

	// Lang is the language attribute of the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta holds name/content pairs written as <meta> tags.
	Meta map[string]string
}

// RenderPage writes page as a complete HTML5 document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n<meta charset=\"utf-8\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := writeMeta(w, page.Meta); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}

func writeMeta(w io.Writer, meta map[string]string) error {
	if len(meta) == 0 {
		return nil
	}
	for _, name := range sortedKeys(meta) {
		if _, err := fmt.Fprintf(w, "<meta name=\"%s\" content=\"%s\">\n", escapeAttr(name), escapeAttr(meta[name])); err != nil {
			return err
		}
	}
	return nil
}

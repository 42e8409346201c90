package main

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"

	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// renderMarkdownToHTML converts trusted markdown, such as catalog exercise
// notes, into HTML for templates.
func (app *application) renderMarkdownToHTML(ctx context.Context, markdown string) template.HTML {
	md := goldmark.New(
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
		),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "render markdown", slog.Any("error", err))
		return template.HTML(template.HTMLEscapeString(markdown)) //nolint:gosec // escaped above.
	}
	return template.HTML(buf.String()) //nolint:gosec // markdown comes from the static catalog.
}

// Package export renders the catalogue grid as a standalone HTML page.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/blackwell-systems/bookconnect/internal/util"
	"github.com/microcosm-cc/bluemonday"
)

// palette is the page colour pair for one theme.
type palette struct {
	Dark  string
	Light string
}

var palettes = map[string]palette{
	"day":   {Dark: "10, 10, 20", Light: "255, 255, 255"},
	"night": {Dark: "255, 255, 255", Light: "10, 10, 20"},
}

type card struct {
	ID          string
	Title       string
	Author      string
	Year        int
	Image       string
	Genres      []string
	Description template.HTML
}

type page struct {
	Theme   string
	Colors  palette
	Total   int
	Shown   int
	Filter  string
	Cards   []card
	Message string
}

var sanitizer = bluemonday.StrictPolicy()

// Render writes an HTML page with one preview card per match. theme is
// "day" or "night"; anything else falls back to day.
func Render(w io.Writer, c *catalog.Catalogue, matches []catalog.Match, theme string) error {
	colors, ok := palettes[theme]
	if !ok {
		theme, colors = "day", palettes["day"]
	}

	p := page{
		Theme:  theme,
		Colors: colors,
		Total:  len(c.Books),
		Shown:  len(matches),
		Cards:  make([]card, 0, len(matches)),
	}
	if len(matches) == 0 {
		p.Message = "No results found. Your filters might be too narrow."
	}

	for _, m := range matches {
		b := m.Book
		cd := card{
			ID:     b.ID,
			Title:  b.Title,
			Author: c.AuthorName(b),
			Image:  b.Image,
			Genres: c.GenreNames(b),
			// StrictPolicy output is escaped text with no markup left.
			Description: template.HTML(sanitizer.Sanitize(b.Description)), //nolint:gosec
		}
		if !b.Published.IsZero() {
			cd.Year = b.Published.Year()
		}
		p.Cards = append(p.Cards, cd)
	}

	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

// WriteFile renders the page and writes it atomically to path.
func WriteFile(path string, c *catalog.Catalogue, matches []catalog.Match, theme string) error {
	var buf bytes.Buffer
	if err := Render(&buf, c, matches, theme); err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>BookConnect</title>
    <style>
        :root {
            --color-dark: {{.Colors.Dark}};
            --color-light: {{.Colors.Light}};
            --orange: #fb6820;
            --teal-light: #2ecfd4;
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: rgb(var(--color-light));
            color: rgb(var(--color-dark));
            line-height: 1.6;
            padding: 20px;
        }
        header { max-width: 1200px; margin: 0 auto 20px; }
        h1 .brand-book { color: var(--orange); }
        h1 .brand-connect { color: var(--teal-light); }
        .subtitle { opacity: 0.6; font-size: 0.9rem; }
        .list {
            max-width: 1200px;
            margin: 0 auto;
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(250px, 1fr));
            gap: 20px;
        }
        .preview {
            border: 1px solid rgba(var(--color-dark), 0.15);
            border-radius: 8px;
            padding: 15px;
        }
        .preview summary { cursor: pointer; list-style: none; }
        .preview__image { width: 100%; max-height: 200px; object-fit: contain; }
        .preview__title { font-weight: 600; }
        .preview__author { opacity: 0.7; font-size: 0.9rem; }
        .preview__genres { font-size: 0.8rem; color: var(--teal-light); }
        .preview__description { margin-top: 10px; font-size: 0.9rem; }
        .list__message { text-align: center; opacity: 0.6; padding: 40px; }
    </style>
</head>
<body>
    <header>
        <h1><span class="brand-book">Book</span><span class="brand-connect">Connect</span></h1>
        <div class="subtitle">{{.Shown}} of {{.Total}} books</div>
    </header>
{{- if .Message}}
    <div class="list__message">{{.Message}}</div>
{{- end}}
    <div class="list">
{{- range .Cards}}
        <details class="preview" id="{{.ID}}">
            <summary>
                {{- if .Image}}
                <img class="preview__image" src="{{.Image}}" alt="{{.Title}}" loading="lazy">
                {{- end}}
                <div class="preview__title">{{.Title}}</div>
                <div class="preview__author">{{.Author}}{{if .Year}} ({{.Year}}){{end}}</div>
            </summary>
            <div class="preview__genres">{{join .Genres " · "}}</div>
            <div class="preview__description">{{.Description}}</div>
        </details>
{{- end}}
    </div>
</body>
</html>
`))

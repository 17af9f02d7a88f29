package renderer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/fredcamaral/declaim/internal/domain/entities"
)

// TemplateRenderer renders a parsed deck into a standalone HTML page
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer creates a new template-based deck renderer
func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl := template.New("deck").Funcs(template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s) // #nosec G203 - converter output is trusted or sanitized upstream
		},
	})

	if _, err := tmpl.Parse(deckTemplate); err != nil {
		return nil, fmt.Errorf("parsing deck template: %w", err)
	}

	return &TemplateRenderer{templates: tmpl}, nil
}

// deckData is the template payload for a full deck page
type deckData struct {
	Title       string
	Background  string
	Stylesheets []string
	Slides      []slideData
}

// slideData is one rendered slide section
type slideData struct {
	Index      int
	Classes    string
	Background string
	Header     string
	Footer     string
	Parts      []template.HTML
}

// RenderDeck renders the whole deck as a standalone HTML page
func (r *TemplateRenderer) RenderDeck(ctx context.Context, deck *entities.Deck) ([]byte, error) {
	if deck == nil {
		return nil, fmt.Errorf("deck cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := deckData{
		Title:       deck.Title,
		Background:  deck.GlobalBackground(),
		Stylesheets: deck.Stylesheets(),
		Slides:      make([]slideData, 0, len(deck.Slides)),
	}

	for _, slide := range deck.Slides {
		data.Slides = append(data.Slides, renderSlide(slide))
	}

	var buf bytes.Buffer
	if err := r.templates.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing deck template: %w", err)
	}

	return buf.Bytes(), nil
}

// renderSlide folds a slide's blocks into the section-level template
// payload. Header, footer, background, and classes use the last directive
// on the slide; comments and deck-level directives contribute nothing to
// the slide body.
func renderSlide(slide entities.Slide) slideData {
	data := slideData{Index: slide.Index}

	for _, block := range slide.Blocks {
		switch b := block.(type) {
		case entities.HTMLBlock:
			data.Parts = append(data.Parts, template.HTML(b.Content)) // #nosec G203 - converter output
		case entities.CodeBlock:
			data.Parts = append(data.Parts, renderCode(b))
		case entities.HeaderBlock:
			data.Header = b.Content
		case entities.FooterBlock:
			data.Footer = b.Content
		case entities.SlideBackgroundBlock:
			data.Background = b.Content
		case entities.SlideClassesBlock:
			data.Classes = strings.Join(b.Classes, " ")
		case entities.ErrorBlock:
			part := `<div class="declaim-error">` + template.HTMLEscapeString(b.Content) + `</div>`
			data.Parts = append(data.Parts, template.HTML(part)) // #nosec G203 - content escaped above
		case entities.CommentBlock, entities.CustomCSSBlock, entities.GlobalBackgroundBlock:
			// comments never render; css/background are deck-level
		}
	}

	return data
}

// renderCode wraps a code sample in a highlightable pre/code element
func renderCode(b entities.CodeBlock) template.HTML {
	var sb strings.Builder
	sb.WriteString(`<pre data-filename="`)
	sb.WriteString(template.HTMLEscapeString(b.Filename))
	sb.WriteString(`" data-runner="`)
	sb.WriteString(template.HTMLEscapeString(b.Runner))
	sb.WriteString(`"><code class="language-`)
	sb.WriteString(template.HTMLEscapeString(b.Language))
	sb.WriteString(`">`)
	sb.WriteString(template.HTMLEscapeString(b.Content))
	sb.WriteString(`</code></pre>`)
	return template.HTML(sb.String()) // #nosec G203 - content escaped above
}

const deckTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{range .Stylesheets}}<link rel="stylesheet" href="{{.}}">
{{end}}<style>
body { margin: 0; font-family: system-ui, sans-serif; {{if .Background}}background: {{.Background}};{{end}} }
section.slide { min-height: 100vh; box-sizing: border-box; padding: 2rem 3rem; display: flex; flex-direction: column; }
section.slide .slide-body { flex: 1; }
.slide-header, .slide-footer { color: #666; font-size: 0.8em; }
.declaim-error { background: #fee; border: 1px solid #c00; color: #c00; padding: 0.5em 1em; }
pre { background: #f4f4f4; padding: 1em; overflow-x: auto; }
</style>
</head>
<body>
{{range .Slides}}<section class="slide{{if .Classes}} {{.Classes}}{{end}}" id="slide-{{.Index}}"{{if .Background}} style="background: {{.Background}}"{{end}}>
{{if .Header}}<div class="slide-header">{{.Header}}</div>
{{end}}<div class="slide-body">
{{range .Parts}}{{.}}
{{end}}</div>
{{if .Footer}}<div class="slide-footer">{{.Footer}}</div>
{{end}}</section>
{{end}}</body>
</html>
`

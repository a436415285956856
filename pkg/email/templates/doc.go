// Package templates renders report emails from an HTML template file.
//
// The template uses four niladic functions as placeholders:
//
//	<title>{{subject}}</title>
//	<h1>{{topic}}</h1>
//	<p class="date">{{date}}</p>
//	<div class="content">{{content}}</div>
//
// Usage:
//
//	r := templates.NewRenderer(templates.WithInlineCSS())
//	html, err := r.Render(templates.Data{
//	    Topic:   "AI chips",
//	    Date:    "2025-01-15",
//	    Content: markup.Convert(raw),
//	})
//	if errors.Is(err, templates.ErrTemplateLoad) {
//	    // template file is missing or does not parse
//	}
package templates

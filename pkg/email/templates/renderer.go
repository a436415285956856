package templates

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"github.com/vanng822/go-premailer/premailer"
)

// DefaultFile is the template file name looked up in the renderer's filesystem.
const DefaultFile = "email_template.html"

// DefaultDir is the directory used when no filesystem is given.
const DefaultDir = "assets"

// subjectPrefix is prepended to the topic in the document title.
const subjectPrefix = "Deep Research Report: "

// Subject returns the document subject for topic.
func Subject(topic string) string {
	return subjectPrefix + topic
}

// EmailSubject returns the email subject line for topic.
func EmailSubject(topic string) string {
	return "🔍 " + Subject(topic)
}

// Data holds the placeholder values for a single render.
type Data struct {
	Topic   string
	Date    string
	Content string // trusted HTML fragment
}

// Renderer fills the report template. The template file is read on every
// call so edits show up without a restart.
type Renderer struct {
	fsys      fs.FS
	file      string
	inlineCSS bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFS reads templates from fsys instead of the assets directory.
func WithFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.fsys = fsys
		}
	}
}

// WithFile overrides the template file name.
func WithFile(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.file = name
		}
	}
}

// WithInlineCSS moves <style> rules into style attributes after rendering.
func WithInlineCSS() Option {
	return func(r *Renderer) { r.inlineCSS = true }
}

// NewRenderer creates a Renderer reading DefaultFile from DefaultDir.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		fsys: os.DirFS(DefaultDir),
		file: DefaultFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render substitutes {{subject}}, {{topic}}, {{date}} and {{content}}.
// Topic and date are escaped; content is inserted as is.
func (r *Renderer) Render(data Data) (string, error) {
	raw, err := fs.ReadFile(r.fsys, r.file)
	if err != nil {
		return "", errors.Join(ErrTemplateLoad, err)
	}

	tpl, err := template.New(r.file).Funcs(funcs(data)).Parse(string(raw))
	if err != nil {
		return "", errors.Join(ErrTemplateLoad, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", errors.Join(ErrTemplateRender, err)
	}

	if !r.inlineCSS {
		return buf.String(), nil
	}
	return inline(buf.String())
}

func funcs(data Data) template.FuncMap {
	return template.FuncMap{
		"subject": func() string { return Subject(data.Topic) },
		"topic":   func() string { return data.Topic },
		"date":    func() string { return data.Date },
		"content": func() template.HTML { return template.HTML(data.Content) }, //nolint:gosec // fragment is built from escaped text
	}
}

func inline(html string) (string, error) {
	p, err := premailer.NewPremailerFromString(html, premailer.NewOptions())
	if err != nil {
		return "", errors.Join(ErrTemplateRender, fmt.Errorf("css inlining: %w", err))
	}
	out, err := p.Transform()
	if err != nil {
		return "", errors.Join(ErrTemplateRender, fmt.Errorf("css inlining: %w", err))
	}
	return out, nil
}

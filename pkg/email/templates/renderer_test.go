package templates_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deepreport/pkg/email/templates"
)

const page = `<!DOCTYPE html>
<html>
<head>
<title>{{subject}}</title>
<style>.headline { font-weight: bold; } h1 { color: #222222; }</style>
</head>
<body>
<h1>{{topic}}</h1>
<p class="date">{{date}}</p>
<div class="content">{{content}}</div>
</body>
</html>`

func templateFS(body string) fstest.MapFS {
	return fstest.MapFS{templates.DefaultFile: &fstest.MapFile{Data: []byte(body)}}
}

func TestSubject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Deep Research Report: AI chips", templates.Subject("AI chips"))
	assert.Equal(t, "🔍 Deep Research Report: AI chips", templates.EmailSubject("AI chips"))
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := templates.NewRenderer(templates.WithFS(templateFS(page)))
	out, err := r.Render(templates.Data{
		Topic:   "AI chips",
		Date:    "2025-01-15",
		Content: `<h3><strong>Bold</strong> report</h3>`,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "<title>Deep Research Report: AI chips</title>")
	assert.Contains(t, out, "<h1>AI chips</h1>")
	assert.Contains(t, out, `<p class="date">2025-01-15</p>`)
	assert.Contains(t, out, `<div class="content"><h3><strong>Bold</strong> report</h3></div>`)
	assert.NotContains(t, out, "{{")
}

func TestRenderer_EscapesTopic(t *testing.T) {
	t.Parallel()

	r := templates.NewRenderer(templates.WithFS(templateFS(page)))
	out, err := r.Render(templates.Data{Topic: "<script>x</script>", Date: "2025-01-15"})
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderer_EmptyContent(t *testing.T) {
	t.Parallel()

	r := templates.NewRenderer(templates.WithFS(templateFS(page)))
	out, err := r.Render(templates.Data{Topic: "AI chips", Date: "2025-01-15"})
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="content"></div>`)
}

func TestRenderer_ReadsOnEveryCall(t *testing.T) {
	t.Parallel()

	fsys := templateFS("<p>{{topic}} v1</p>")
	r := templates.NewRenderer(templates.WithFS(fsys))

	out, err := r.Render(templates.Data{Topic: "T"})
	require.NoError(t, err)
	assert.Equal(t, "<p>T v1</p>", out)

	fsys[templates.DefaultFile] = &fstest.MapFile{Data: []byte("<p>{{topic}} v2</p>")}

	out, err = r.Render(templates.Data{Topic: "T"})
	require.NoError(t, err)
	assert.Equal(t, "<p>T v2</p>", out)
}

func TestRenderer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []templates.Option
		wantErr error
	}{
		{
			name:    "missing file",
			opts:    []templates.Option{templates.WithFS(fstest.MapFS{})},
			wantErr: templates.ErrTemplateLoad,
		},
		{
			name:    "other file name",
			opts:    []templates.Option{templates.WithFS(templateFS(page)), templates.WithFile("weekly.html")},
			wantErr: templates.ErrTemplateLoad,
		},
		{
			name:    "parse error",
			opts:    []templates.Option{templates.WithFS(templateFS("<p>{{topic</p>"))},
			wantErr: templates.ErrTemplateLoad,
		},
		{
			name:    "unknown field",
			opts:    []templates.Option{templates.WithFS(templateFS("<p>{{.Missing}}</p>"))},
			wantErr: templates.ErrTemplateRender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := templates.NewRenderer(tt.opts...).Render(templates.Data{Topic: "T"})
			assert.Empty(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRenderer_InlineCSS(t *testing.T) {
	t.Parallel()

	r := templates.NewRenderer(templates.WithFS(templateFS(page)), templates.WithInlineCSS())
	out, err := r.Render(templates.Data{
		Topic:   "AI chips",
		Date:    "2025-01-15",
		Content: `<div class="headline">Item</div>`,
	})
	require.NoError(t, err)

	assert.Regexp(t, `style="[^"]*font-weight`, out)
	assert.Contains(t, out, "Item")
	assert.Contains(t, out, "AI chips")
}

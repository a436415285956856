package templates

import "errors"

var (
	ErrTemplateLoad   = errors.New("templates.errors.load_failed")
	ErrTemplateRender = errors.New("templates.errors.render_failed")
)

package provider

import (
	"context"
	"fmt"

	"github.com/schoolboyqueue/specforge/internal/template"
)

// FileTemplate pairs an output path template with a body template. Both may
// contain placeholders.
type FileTemplate struct {
	Path string
	Body string
}

// TemplateProvider generates files by rendering registered templates
// through the template engine instead of calling an AI backend.
type TemplateProvider struct {
	Engine    *template.Engine
	Templates []FileTemplate
}

// NewTemplateProvider creates a provider over an engine with bound values.
func NewTemplateProvider(engine *template.Engine, templates []FileTemplate) *TemplateProvider {
	return &TemplateProvider{Engine: engine, Templates: templates}
}

// Generate renders every registered template. The prompt is unused on this
// path; template bindings carry the substitution values.
func (p *TemplateProvider) Generate(ctx context.Context, prompt string, opts Options) (*Result, error) {
	if p.Engine == nil {
		return nil, fmt.Errorf("template provider has no engine")
	}
	if len(p.Templates) == 0 {
		return nil, fmt.Errorf("template provider has no templates registered")
	}

	files := make([]GeneratedFile, 0, len(p.Templates))
	for _, tmpl := range p.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, err := p.Engine.RenderSimple(tmpl.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to render path template %q: %w", tmpl.Path, err)
		}

		result, err := p.Engine.Render(tmpl.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to render template for %s: %w", path, err)
		}

		files = append(files, GeneratedFile{Path: path, Content: result.Output})
	}

	return &Result{Files: files, TokensUsed: 0}, nil
}

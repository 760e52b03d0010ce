package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/swaggertools/loader"
)

// inlineSource names a document supplied as tool content. The .yaml
// extension selects the YAML parser, which also accepts JSON.
const inlineSource = "inline.yaml"

// documentsInput is the document set a tool operates on. Content, when
// present, is the root document and Sources supply the rest; otherwise the
// first of Sources is the root.
type documentsInput struct {
	Sources []string `json:"sources,omitempty" jsonschema:"Paths or URLs of the documents, root document first. For Swagger 1.2 list the resource listing followed by its API declarations."`
	Content string   `json:"content,omitempty" jsonschema:"Inline root document as JSON or YAML"`
}

// resolve acquires and classifies the documents described by d.
func (d documentsInput) resolve(ctx context.Context) (loader.DocumentSet, error) {
	if d.Content == "" && len(d.Sources) == 0 {
		return nil, fmt.Errorf("at least one of content or sources must be provided")
	}
	if len(d.Content) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content is %d bytes, exceeding the %d byte limit", len(d.Content), cfg.MaxInlineSize)
	}

	if d.Content == "" {
		return loader.Acquire(ctx, d.Sources, loaderOptions()...)
	}

	root, err := loader.Parse([]byte(d.Content), inlineSource)
	if err != nil {
		return nil, err
	}
	docs := []loader.Sourced{{Source: inlineSource, Document: root}}
	if len(d.Sources) > 0 {
		rest, err := loader.Load(ctx, d.Sources, loaderOptions()...)
		if err != nil {
			return nil, err
		}
		docs = append(docs, rest...)
	}
	return loader.Classify(docs)
}

func loaderOptions() []loader.Option {
	if cfg.AllowPrivateIPs {
		return []loader.Option{loader.WithTimeout(cfg.FetchTimeout)}
	}
	return []loader.Option{loader.WithHTTPClient(newSafeHTTPClient(cfg.FetchTimeout))}
}

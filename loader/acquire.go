package loader

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Load fetches and parses every reference concurrently and returns the
// documents in input order.
//
// All fetches run to completion even when one of them fails; the error
// returned is the one belonging to the lowest input index.
func Load(ctx context.Context, refs []string, opts ...Option) ([]Sourced, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid options: %w", err)
	}
	return load(ctx, cfg, refs)
}

func load(ctx context.Context, cfg *acquireConfig, refs []string) ([]Sourced, error) {
	fetcher := cfg.newFetcher()
	log := cfg.log()

	docs := make([]Sourced, len(refs))
	errs := make([]error, len(refs))

	var g errgroup.Group
	for i, ref := range refs {
		g.Go(func() error {
			docs[i].Source = ref
			data, err := fetcher.Fetch(ctx, ref)
			if err != nil {
				errs[i] = err
				return nil
			}
			doc, err := Parse(data, ref)
			if err != nil {
				errs[i] = err
				return nil
			}
			docs[i].Document = doc
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			log.Debug("acquisition failed", "source", refs[i], "index", i, "error", err)
			return nil, err
		}
	}
	log.Debug("acquired documents", "count", len(refs))
	return docs, nil
}

// Acquire loads every reference and classifies the result into a DocumentSet.
//
//	set, err := loader.Acquire(ctx, []string{"api-docs.json", "pets.json"})
//	switch set := set.(type) {
//	case *loader.LegacyGeneration:
//	    // set.ResourceListing, set.Declarations
//	case *loader.CurrentGeneration:
//	    // set.Document
//	}
func Acquire(ctx context.Context, refs []string, opts ...Option) (DocumentSet, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid options: %w", err)
	}
	docs, err := load(ctx, cfg, refs)
	if err != nil {
		return nil, err
	}
	set, err := Classify(docs)
	if err != nil {
		return nil, err
	}
	if cur, ok := set.(*CurrentGeneration); ok && len(cur.Ignored) > 0 {
		cfg.log().Debug("ignoring documents supplied after a Swagger 2.0 document", "ignored", cur.Ignored)
	}
	return set, nil
}

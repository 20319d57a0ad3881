// Package siteschema infers and validates content models for static-site
// projects. Given a repository with no prior schema it detects the site
// generator, classifies content files, infers field types per document, and
// consolidates structurally similar records into a minimal set of shared
// models.
package siteschema

import (
	"context"

	"github.com/goliatone/go-siteschema/internal/ssg"
	"github.com/goliatone/go-siteschema/pkg/filebrowser"
	"github.com/goliatone/go-siteschema/pkg/generator"
	"github.com/goliatone/go-siteschema/pkg/schema"
)

// Field is one typed node in an inferred or declared schema tree.
type Field = schema.Field

// Model is a named top-level schema entity composed of fields.
type Model = schema.Model

// Result holds the models produced by one inference run.
type Result = generator.Result

// SSGMatchResult describes the detected static-site generator and its
// conventional content directories.
type SSGMatchResult = ssg.MatchResult

// FileBrowser is the repository access capability consumed by the generator.
type FileBrowser = filebrowser.FileBrowser

// Option customises the schema generator.
type Option = generator.Option

// WithDSCThreshold overrides the page-shape similarity cutoff.
func WithDSCThreshold(threshold float64) Option {
	return generator.WithDSCThreshold(threshold)
}

// DetectSSG sniffs the repository for static-site generator signatures.
func DetectSSG(browser FileBrowser) (*SSGMatchResult, error) {
	return ssg.Match(browser)
}

// GenerateSchema runs the full pipeline against a local repository: index
// the tree, detect the generator, and infer the content model. It is the
// simplest entry point for callers that just want models.
func GenerateSchema(ctx context.Context, repoDir string, options ...Option) (*Result, error) {
	browser, err := filebrowser.NewLocal(repoDir)
	if err != nil {
		return nil, err
	}

	match, err := ssg.Match(browser)
	if err != nil {
		return nil, err
	}

	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		FileBrowser: browser,
		SSGMatch:    match,
	})
}

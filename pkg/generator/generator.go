// Package generator drives schema inference across a repository: it
// classifies candidate content files, builds one field tree per document,
// folds structurally similar page shapes together, and assembles the final
// page, data, and object models.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/goliatone/go-siteschema/internal/consolidate"
	"github.com/goliatone/go-siteschema/internal/infer"
	"github.com/goliatone/go-siteschema/internal/ssg"
	"github.com/goliatone/go-siteschema/pkg/content"
	"github.com/goliatone/go-siteschema/pkg/filebrowser"
	"github.com/goliatone/go-siteschema/pkg/schema"
)

// DefaultPageExcludes filters repository documentation out of page scans.
var DefaultPageExcludes = []string{
	"README*",
	"**/README*",
	"LICENSE*",
	"**/LICENSE*",
	"CHANGELOG*",
	"**/CHANGELOG*",
	"CONTRIBUTING*",
	"**/CONTRIBUTING*",
}

// DefaultDataExcludes filters tooling manifests and lockfiles out of data
// scans.
var DefaultDataExcludes = []string{
	"package.json",
	"**/package.json",
	"package-lock.json",
	"**/package-lock.json",
	"yarn.lock",
	"**/yarn.lock",
	"pnpm-lock.yaml",
	"**/pnpm-lock.yaml",
	"tsconfig.json",
	"jsconfig.json",
	"netlify.toml",
}

// Option customises a Generator.
type Option func(*Generator)

// WithLogger injects the logger used for per-file diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithDSCThreshold overrides the page-shape similarity cutoff.
func WithDSCThreshold(threshold float64) Option {
	return func(g *Generator) {
		g.threshold = threshold
	}
}

// WithPageExcludes appends exclude globs for page scans.
func WithPageExcludes(globs ...string) Option {
	return func(g *Generator) {
		g.pageExcludes = append(g.pageExcludes, globs...)
	}
}

// WithDataExcludes appends exclude globs for data scans.
func WithDataExcludes(globs ...string) Option {
	return func(g *Generator) {
		g.dataExcludes = append(g.dataExcludes, globs...)
	}
}

// Generator infers a content model from a repository file tree.
type Generator struct {
	logger       *slog.Logger
	threshold    float64
	pageExcludes []string
	dataExcludes []string
}

// New constructs a Generator with the default classification tables.
func New(options ...Option) *Generator {
	g := &Generator{
		logger:       slog.Default(),
		threshold:    consolidate.DefaultDSCThreshold,
		pageExcludes: append([]string(nil), DefaultPageExcludes...),
		dataExcludes: append([]string(nil), DefaultDataExcludes...),
	}
	for _, option := range options {
		if option != nil {
			option(g)
		}
	}
	return g
}

// Request carries the inputs for one inference run.
type Request struct {
	// FileBrowser provides indexed access to the repository tree.
	FileBrowser filebrowser.FileBrowser

	// SSGMatch scopes the scan to the detected generator's conventional
	// directories. Nil means the repository root is scanned directly.
	SSGMatch *ssg.MatchResult
}

// Result holds the inferred models: page models first, then data models,
// then the object models extracted during list-item consolidation.
type Result struct {
	Models []schema.Model
}

// Generate runs the full inference pipeline. Files that fail to parse or
// yield no typeable fields are skipped; they contribute nothing to the
// schema rather than aborting the run.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.FileBrowser == nil {
		return nil, fmt.Errorf("generator: file browser is required")
	}
	if err := req.FileBrowser.ListFiles(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	match := req.SSGMatch
	pagesDir, dataDir := "", ""
	if match != nil {
		pagesDir, dataDir = match.PagesDir, match.DataDir
	}

	pageShapes, err := g.collectPageShapes(ctx, req.FileBrowser, pagesDir, g.pageFilter(match))
	if err != nil {
		return nil, err
	}

	dataModels, err := g.collectDataModels(ctx, req.FileBrowser, dataDir, g.dataFilter(match))
	if err != nil {
		return nil, err
	}

	pageFieldsList, err := consolidate.ObjectShapesWithDSC(pageShapes, g.threshold)
	if err != nil {
		return nil, fmt.Errorf("generator: consolidate pages: %w", err)
	}

	models := make([]schema.Model, 0, len(pageFieldsList)+len(dataModels))
	for i, fields := range pageFieldsList {
		name := fmt.Sprintf("page_%d", i+1)
		models = append(models, schema.Model{
			Type:   schema.ModelTypePage,
			Name:   name,
			Label:  schema.DefaultLabel(name),
			Fields: fields,
		})
	}
	models = append(models, dataModels...)

	models = assembleObjectModels(models)
	return &Result{Models: models}, nil
}

func (g *Generator) pageFilter(match *ssg.MatchResult) filebrowser.Filter {
	return filebrowser.Filter{
		Extensions: filebrowser.MarkdownExtensions,
		Excludes:   appendDirExcludes(append([]string(nil), g.pageExcludes...), match),
	}
}

func (g *Generator) dataFilter(match *ssg.MatchResult) filebrowser.Filter {
	excludes := append([]string(nil), g.dataExcludes...)
	for _, name := range ssg.ConfigFileNames {
		excludes = append(excludes, name)
	}
	return filebrowser.Filter{
		Extensions: filebrowser.DataExtensions,
		Excludes:   appendDirExcludes(excludes, match),
	}
}

func appendDirExcludes(excludes []string, match *ssg.MatchResult) []string {
	if match == nil {
		return excludes
	}
	if match.PublishDir != "" {
		excludes = append(excludes, match.PublishDir+"/**")
	}
	if match.SSGDir != "" {
		excludes = append(excludes, match.SSGDir+"/**")
	}
	return excludes
}

func (g *Generator) collectPageShapes(ctx context.Context, browser filebrowser.FileBrowser, dir string, filter filebrowser.Filter) ([][]schema.Field, error) {
	paths, err := browser.ReadFilesRecursively(dir, filter)
	if err != nil {
		return nil, fmt.Errorf("generator: list pages: %w", err)
	}

	var shapes [][]schema.Field
	for _, filePath := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, known, err := browser.GetFileData(filePath)
		if !known || err != nil {
			g.logger.Debug("skipping unreadable page file", "path", filePath, "error", err)
			continue
		}

		record := flattenPageDocument(value)
		fields, err := infer.BuildFields(record, nil)
		if err != nil {
			return nil, fmt.Errorf("generator: infer %s: %w", filePath, err)
		}
		if fields == nil {
			g.logger.Debug("page file yielded no typeable fields", "path", filePath)
			continue
		}
		shapes = append(shapes, fields)
	}
	return shapes, nil
}

// flattenPageDocument turns the {frontmatter, markdown} parse shape into one
// flat record with the markdown body injected under the sentinel key.
func flattenPageDocument(value content.Value) content.Value {
	var members []content.Member
	body := ""
	for _, member := range value.Members() {
		switch member.Key {
		case "frontmatter":
			members = append(members, member.Value.Members()...)
		case "markdown":
			body = member.Value.String()
		}
	}
	if strings.TrimSpace(body) != "" {
		members = append(members, content.Member{
			Key:   infer.MarkdownContentField,
			Value: content.StringValue(body),
		})
	}
	return content.ObjectValue(members...)
}

func (g *Generator) collectDataModels(ctx context.Context, browser filebrowser.FileBrowser, dir string, filter filebrowser.Filter) ([]schema.Model, error) {
	paths, err := browser.ReadFilesRecursively(dir, filter)
	if err != nil {
		return nil, fmt.Errorf("generator: list data files: %w", err)
	}

	var models []schema.Model
	for _, filePath := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, known, err := browser.GetFileData(filePath)
		if !known || err != nil {
			g.logger.Debug("skipping unreadable data file", "path", filePath, "error", err)
			continue
		}

		model, err := g.dataModelFromValue(filePath, value)
		if err != nil {
			return nil, fmt.Errorf("generator: infer %s: %w", filePath, err)
		}
		if model == nil {
			g.logger.Debug("data file yielded no typeable fields", "path", filePath)
			continue
		}
		models = append(models, *model)
	}
	return models, nil
}

func (g *Generator) dataModelFromValue(filePath string, value content.Value) (*schema.Model, error) {
	name := dataModelName(filePath)
	switch value.Kind() {
	case content.KindObject:
		fields, err := infer.BuildFields(value, nil)
		if err != nil || fields == nil {
			return nil, err
		}
		return &schema.Model{
			Type:   schema.ModelTypeData,
			Name:   name,
			Label:  schema.DefaultLabel(name),
			Fields: fields,
		}, nil
	case content.KindArray:
		listField, err := infer.BuildListField(value.Items(), nil)
		if err != nil || listField == nil {
			return nil, err
		}
		return &schema.Model{
			Type:   schema.ModelTypeData,
			Name:   name,
			Label:  schema.DefaultLabel(name),
			IsList: true,
			Items:  listField.Items,
		}, nil
	default:
		return nil, nil
	}
}

// dataModelName derives a snake_case model name from the file stem.
func dataModelName(filePath string) string {
	stem := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	var out strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(stem) {
		isWord := r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		if isWord {
			out.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && out.Len() > 0 {
			out.WriteRune('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(out.String(), "_")
}

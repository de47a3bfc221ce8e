// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate fans a content request out over content types and
// variations, driving the model client through the prompt templates and the
// per-type parsers. One failed variation never aborts its siblings; the
// failed slot carries an inline error marker instead.
package generate

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bpradana/weave"

	"github.com/pdiddy/content-engine/internal/llm"
	"github.com/pdiddy/content-engine/internal/parse"
	"github.com/pdiddy/content-engine/internal/prompt"
	"github.com/pdiddy/content-engine/pkg/types"
)

const (
	defaultVariations = 3
	maxVariations     = 5
)

// defaultPlatforms applies when a social caption request names none.
var defaultPlatforms = []string{"Instagram"}

// ValidationError reports a request rejected before any model call.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// contentSpec binds a content type to its template and parser. Social
// captions are absent: they fan out over platforms instead of parsing.
type contentSpec struct {
	template string
	parse    func(string) types.Variation
}

var contentSpecs = map[types.ContentType]contentSpec{
	types.TypeAdCopy: {
		template: prompt.TemplateAdCopy,
		parse:    func(s string) types.Variation { return parse.AdCopy(s) },
	},
	types.TypeEmailBlocks: {
		template: prompt.TemplateEmail,
		parse:    func(s string) types.Variation { return parse.EmailBlocks(s) },
	},
	types.TypeVideoScripts: {
		template: prompt.TemplateVideoScript,
		parse:    func(s string) types.Variation { return parse.VideoScript(s) },
	},
	types.TypeImagePrompts: {
		template: prompt.TemplateImagePrompt,
		parse:    func(s string) types.Variation { return parse.ImagePrompts(s) },
	},
}

// Orchestrator runs generation and edit requests against one model client.
type Orchestrator struct {
	client    *llm.Client
	templates *prompt.Store
	workers   int
	log       io.Writer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithWorkers enables parallel fan-out on a bounded pool of n workers.
// Values below 2 keep the request sequential.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) { o.workers = n }
}

// WithLogWriter directs per-variation progress lines to w.
func WithLogWriter(w io.Writer) Option {
	return func(o *Orchestrator) { o.log = w }
}

// New builds an Orchestrator around an explicit client and template store.
func New(client *llm.Client, templates *prompt.Store, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client:    client,
		templates: templates,
		log:       io.Discard,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate produces num_variations variations for every requested content
// type. The result always carries exactly the requested types, each with
// exactly num_variations slots; a slot whose model call failed holds an
// inline error marker string. Only request validation aborts the whole run.
func (o *Orchestrator) Generate(ctx context.Context, req types.ContentRequest) (*types.GeneratedContent, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ValidationError("prompt must not be empty")
	}
	if len(req.ContentTypes) == 0 {
		return nil, ValidationError("at least one content type is required")
	}

	n := req.NumVariations
	if n == 0 {
		n = defaultVariations
	}
	if n < 1 {
		n = 1
	}
	if n > maxVariations {
		n = maxVariations
	}

	platforms := req.Platforms
	if len(platforms) == 0 {
		platforms = defaultPlatforms
	}

	brandCtx := prompt.FormatBrandContext(req.BrandContext)

	slots := make([][]types.Variation, len(req.ContentTypes))
	for i := range slots {
		slots[i] = make([]types.Variation, n)
	}

	run := func(ti, vi int) {
		ct := req.ContentTypes[ti]
		v, err := o.generateOne(ctx, ct, req.Prompt, brandCtx, platforms)
		if err != nil {
			fmt.Fprintf(o.log, "failed  %s variation %d: %v\n", ct, vi+1, err)
			slots[ti][vi] = types.GenerationError(
				fmt.Sprintf("Error generating variation %d: %v", vi+1, err))
			return
		}
		fmt.Fprintf(o.log, "generated %s variation %d\n", ct, vi+1)
		slots[ti][vi] = v
	}

	if o.workers > 1 {
		o.runParallel(len(req.ContentTypes), n, run)
	} else {
		for ti := range req.ContentTypes {
			for vi := 0; vi < n; vi++ {
				run(ti, vi)
			}
		}
	}

	result := types.NewGeneratedContent()
	for i, ct := range req.ContentTypes {
		result.Set(ct, slots[i])
	}
	return result, nil
}

// runParallel executes every (type, variation) branch on a bounded worker
// pool. Each branch writes only its own slot, so output order is request
// order regardless of completion order.
func (o *Orchestrator) runParallel(numTypes, numVariations int, run func(ti, vi int)) {
	pool := weave.NewWorkerPoolDispatcher(o.workers)
	defer pool.Stop()

	var wg sync.WaitGroup
	for ti := 0; ti < numTypes; ti++ {
		for vi := 0; vi < numVariations; vi++ {
			ti, vi := ti, vi
			wg.Add(1)
			pool.Submit(func() {
				defer wg.Done()
				run(ti, vi)
			})
		}
	}
	wg.Wait()
}

// generateOne produces a single variation. Social captions loop over every
// requested platform within the one variation, collecting a per-platform
// map; all other types make one call and parse the response.
func (o *Orchestrator) generateOne(ctx context.Context, ct types.ContentType, productPrompt, brandCtx string, platforms []string) (types.Variation, error) {
	if ct == types.TypeSocialCaptions {
		captions := make(types.SocialCaptions, len(platforms))
		for _, platform := range platforms {
			text, err := o.render(ctx, prompt.TemplateSocialCaption, prompt.Data{
				BrandContext:  brandCtx,
				ProductPrompt: productPrompt,
				Platform:      platform,
			})
			if err != nil {
				return nil, err
			}
			captions[platform] = text
		}
		return captions, nil
	}

	spec, ok := contentSpecs[ct]
	if !ok {
		return nil, fmt.Errorf("unsupported content type %q", ct)
	}

	text, err := o.render(ctx, spec.template, prompt.Data{
		BrandContext:  brandCtx,
		ProductPrompt: productPrompt,
	})
	if err != nil {
		return nil, err
	}
	return spec.parse(text), nil
}

// render substitutes the template and invokes the model client.
func (o *Orchestrator) render(ctx context.Context, templateName string, d prompt.Data) (string, error) {
	promptText, err := o.templates.Render(templateName, d)
	if err != nil {
		return "", err
	}
	return o.client.Call(ctx, promptText)
}

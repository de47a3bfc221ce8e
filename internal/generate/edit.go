// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/content-engine/internal/parse"
	"github.com/pdiddy/content-engine/internal/prompt"
	"github.com/pdiddy/content-engine/pkg/types"
)

// Edit re-invokes the model on one existing variation with a free-text
// instruction, attempting to preserve the original's shape. Reconciliation
// tiers for a structured original: a strict JSON decode into the same shape,
// then the type's textual parser (ad copy, email), then an edited_content
// wrapper. Unstructured originals come back as raw text. A terminal model
// failure propagates; the caller keeps the prior content.
func (o *Orchestrator) Edit(ctx context.Context, original types.Variation, instruction string, ct types.ContentType, bc *types.BrandContext) (types.Variation, error) {
	if original == nil {
		return nil, ValidationError("original content is required")
	}
	if strings.TrimSpace(instruction) == "" {
		return nil, ValidationError("edit instruction must not be empty")
	}

	response, err := o.render(ctx, prompt.TemplateEdit, prompt.Data{
		BrandContext:    prompt.FormatBrandContext(bc),
		OriginalContent: renderOriginal(original),
		EditInstruction: instruction,
		ContentType:     string(ct),
	})
	if err != nil {
		return nil, err
	}

	if !types.Structured(original) {
		return types.Text(response), nil
	}

	if v, ok := decodeSameShape(original, response); ok {
		return v, nil
	}

	switch ct {
	case types.TypeAdCopy:
		return parse.AdCopy(response), nil
	case types.TypeEmailBlocks:
		return parse.EmailBlocks(response), nil
	}
	return types.Edited{EditedContent: response}, nil
}

// renderOriginal produces the text embedded in the edit prompt: indented
// JSON for structured records, literal text otherwise.
func renderOriginal(v types.Variation) string {
	if types.Structured(v) {
		b, err := json.MarshalIndent(v, "", "  ")
		if err == nil {
			return string(b)
		}
	}
	switch orig := v.(type) {
	case types.Text:
		return string(orig)
	case types.GenerationError:
		return string(orig)
	case types.ImagePrompts:
		return strings.Join(orig, "\n")
	}
	return fmt.Sprint(v)
}

// decodeSameShape attempts a strict JSON decode of the response into the
// original's concrete type. The model is not obligated to emit JSON, so
// this is best-effort; any mismatch falls through to textual parsing.
func decodeSameShape(original types.Variation, response string) (types.Variation, bool) {
	decode := func(dst any) bool {
		dec := json.NewDecoder(strings.NewReader(response))
		dec.DisallowUnknownFields()
		return dec.Decode(dst) == nil
	}

	switch original.(type) {
	case types.AdCopy:
		var v types.AdCopy
		if decode(&v) {
			return v, true
		}
	case types.EmailBlocks:
		var v types.EmailBlocks
		if decode(&v) {
			return v, true
		}
	case types.VideoScript:
		var v types.VideoScript
		if decode(&v) {
			return v, true
		}
	case types.SocialCaptions:
		var v types.SocialCaptions
		if decode(&v) && len(v) > 0 {
			return v, true
		}
	case types.Edited:
		var v types.Edited
		if decode(&v) {
			return v, true
		}
	}
	return nil, false
}

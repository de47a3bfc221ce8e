// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/content-engine/internal/llm"
	"github.com/pdiddy/content-engine/pkg/types"
)

// fixedBackend returns one canned response, or a permanent error.
type fixedBackend struct {
	response   string
	err        error
	lastPrompt string
}

func (b *fixedBackend) Complete(_ context.Context, promptText string) (string, error) {
	b.lastPrompt = promptText
	if b.err != nil {
		return "", b.err
	}
	return b.response, nil
}

var editOriginal = types.AdCopy{Headline: "Fresh Matcha", Subtext: "Try it today", CTA: "Shop Now"}

func TestEdit_StrictJSONPreservesShape(t *testing.T) {
	backend := &fixedBackend{response: `{"headline":"Hilarious Matcha","subtext":"Laugh and sip","cta":"Shop Now"}`}
	o := newTestOrchestrator(backend)

	got, err := o.Edit(context.Background(), editOriginal, "make it funnier", types.TypeAdCopy, nil)
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}

	ad, ok := got.(types.AdCopy)
	if !ok {
		t.Fatalf("result is %T, want types.AdCopy", got)
	}
	if ad.Headline != "Hilarious Matcha" {
		t.Errorf("headline = %q", ad.Headline)
	}
}

func TestEdit_LabeledFallbackWhenJSONFails(t *testing.T) {
	// The response is not valid JSON but matches the labeled-line layout,
	// so the textual parser recovers the record instead of wrapping it.
	backend := &fixedBackend{response: "Headline: Hilarious Matcha\nSubtext: Laugh and sip\nCTA: Shop Now"}
	o := newTestOrchestrator(backend)

	got, err := o.Edit(context.Background(), editOriginal, "make it funnier", types.TypeAdCopy, nil)
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}

	ad, ok := got.(types.AdCopy)
	if !ok {
		t.Fatalf("result is %T, want types.AdCopy", got)
	}
	if ad.Headline != "Hilarious Matcha" || ad.Subtext != "Laugh and sip" || ad.CTA != "Shop Now" {
		t.Errorf("parsed ad copy = %+v", ad)
	}
}

func TestEdit_WrapsWhenNoParserFits(t *testing.T) {
	backend := &fixedBackend{response: "A punchier script, just trust me."}
	o := newTestOrchestrator(backend)

	original := types.VideoScript{MainContent: "old pitch", Duration: types.DefaultVideoDuration}
	got, err := o.Edit(context.Background(), original, "punch it up", types.TypeVideoScripts, nil)
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}

	wrapped, ok := got.(types.Edited)
	if !ok {
		t.Fatalf("result is %T, want types.Edited", got)
	}
	if wrapped.EditedContent != "A punchier script, just trust me." {
		t.Errorf("edited content = %q", wrapped.EditedContent)
	}
}

func TestEdit_UnstructuredReturnsRawText(t *testing.T) {
	backend := &fixedBackend{response: "new caption, now with jokes"}
	o := newTestOrchestrator(backend)

	got, err := o.Edit(context.Background(), types.Text("old caption"), "make it funnier", types.TypeSocialCaptions, nil)
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}

	text, ok := got.(types.Text)
	if !ok {
		t.Fatalf("result is %T, want types.Text", got)
	}
	if string(text) != "new caption, now with jokes" {
		t.Errorf("text = %q", text)
	}
}

func TestEdit_PromptEmbedsOriginalAndInstruction(t *testing.T) {
	backend := &fixedBackend{response: "whatever"}
	o := newTestOrchestrator(backend)

	bc := &types.BrandContext{BrandName: "Acme"}
	_, err := o.Edit(context.Background(), editOriginal, "make it funnier", types.TypeAdCopy, bc)
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}

	for _, want := range []string{
		`"headline": "Fresh Matcha"`,
		"Edit Instruction: make it funnier",
		"Original Content (Ad Copy):",
		"Brand: Acme",
	} {
		if !strings.Contains(backend.lastPrompt, want) {
			t.Errorf("edit prompt missing %q", want)
		}
	}
}

func TestEdit_ModelFailurePropagates(t *testing.T) {
	backend := &fixedBackend{err: errors.New("boom")}
	o := newTestOrchestrator(backend)

	_, err := o.Edit(context.Background(), editOriginal, "make it funnier", types.TypeAdCopy, nil)
	var callErr *llm.ModelCallError
	if !errors.As(err, &callErr) {
		t.Fatalf("error = %v, want *llm.ModelCallError", err)
	}
}

func TestEdit_Validation(t *testing.T) {
	o := newTestOrchestrator(&fixedBackend{response: "x"})

	_, err := o.Edit(context.Background(), editOriginal, "  ", types.TypeAdCopy, nil)
	var vErr ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}

	_, err = o.Edit(context.Background(), nil, "shorten", types.TypeAdCopy, nil)
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

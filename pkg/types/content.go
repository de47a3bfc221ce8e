// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the domain records and configuration shared across
// the content-engine pipeline stages.
package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ContentType identifies one marketing artifact category. The string form is
// the display name used as a key in exported results.
type ContentType string

const (
	TypeAdCopy         ContentType = "Ad Copy"
	TypeSocialCaptions ContentType = "Social Media Captions"
	TypeEmailBlocks    ContentType = "Email Creative Blocks"
	TypeVideoScripts   ContentType = "Video Scripts"
	TypeImagePrompts   ContentType = "Image Prompts"
)

// AllContentTypes lists every supported content type in canonical order.
var AllContentTypes = []ContentType{
	TypeAdCopy,
	TypeSocialCaptions,
	TypeEmailBlocks,
	TypeVideoScripts,
	TypeImagePrompts,
}

// ParseContentType resolves a user-supplied name to a ContentType. It accepts
// the display name as well as snake_case and kebab-case forms, ignoring case
// ("Ad Copy", "ad_copy", "ad-copy").
func ParseContentType(s string) (ContentType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", " ")
	norm = strings.ReplaceAll(norm, "-", " ")
	for _, ct := range AllContentTypes {
		if norm == strings.ToLower(string(ct)) {
			return ct, nil
		}
	}
	return "", fmt.Errorf("unknown content type %q", s)
}

// BrandTone is one of the supported voice presets for generated copy.
type BrandTone string

const (
	ToneProfessional  BrandTone = "Professional"
	ToneCasual        BrandTone = "Casual"
	ToneHumorous      BrandTone = "Humorous"
	ToneUrgent        BrandTone = "Urgent"
	ToneFriendly      BrandTone = "Friendly"
	ToneAuthoritative BrandTone = "Authoritative"
	ToneGenZSlang     BrandTone = "Gen Z Slang"
)

// AllBrandTones lists the accepted tone values.
var AllBrandTones = []BrandTone{
	ToneProfessional,
	ToneCasual,
	ToneHumorous,
	ToneUrgent,
	ToneFriendly,
	ToneAuthoritative,
	ToneGenZSlang,
}

// Valid reports whether t is one of the accepted tone values.
func (t BrandTone) Valid() bool {
	for _, tone := range AllBrandTones {
		if t == tone {
			return true
		}
	}
	return false
}

// BrandContext carries the brand attributes used to steer generation tone
// and substance. All fields are optional; empty fields contribute nothing
// to the prompt.
type BrandContext struct {
	BrandName      string    `json:"brand_name" yaml:"brand_name"`
	TargetAudience string    `json:"target_audience" yaml:"target_audience"`
	BrandTone      BrandTone `json:"brand_tone" yaml:"brand_tone"`
	Industry       string    `json:"industry" yaml:"industry"`
	KeyValues      string    `json:"key_values" yaml:"key_values"`
}

// ContentRequest describes one generation run.
type ContentRequest struct {
	// Prompt is the free-text product or campaign description. Required.
	Prompt string `json:"prompt" yaml:"prompt"`

	// ContentTypes selects which artifact categories to generate. Required.
	ContentTypes []ContentType `json:"content_types" yaml:"content_types"`

	// Platforms applies to social captions only. Defaults to ["Instagram"].
	Platforms []string `json:"platforms,omitempty" yaml:"platforms,omitempty"`

	// BrandContext is optional; nil yields an empty context block in prompts.
	BrandContext *BrandContext `json:"brand_context,omitempty" yaml:"brand_context,omitempty"`

	// NumVariations is the number of variations per content type, in [1,5].
	// Zero selects the default of 3.
	NumVariations int `json:"num_variations" yaml:"num_variations"`
}

// DefaultVideoDuration is the fixed duration hint attached to every video
// script; it is never parsed from model output.
const DefaultVideoDuration = "30-60 seconds"

// Variation is one generated instance of a content type. The concrete type
// depends on the content type: structured records for ad copy, email blocks,
// and video scripts; a per-platform map for social captions; a string list
// for image prompts. GenerationError marks a failed slot and Text carries
// unstructured content through the edit path.
type Variation interface {
	variation()
}

// AdCopy is a structured advertising copy record.
type AdCopy struct {
	Headline string `json:"headline"`
	Subtext  string `json:"subtext"`
	CTA      string `json:"cta"`
}

func (AdCopy) variation() {}

// SocialCaptions maps a platform name to its raw caption text. Captions are
// intentionally unstructured; the model response is stored verbatim.
type SocialCaptions map[string]string

func (SocialCaptions) variation() {}

// EmailBlocks is a structured email creative record.
type EmailBlocks struct {
	SubjectLine  string `json:"subject_line"`
	Header       string `json:"header"`
	ProductBlurb string `json:"product_blurb"`
	CTAButton    string `json:"cta_button"`
}

func (EmailBlocks) variation() {}

// VideoScript is a structured short-form video script record.
type VideoScript struct {
	Hook        string `json:"hook"`
	MainContent string `json:"main_content"`
	CTA         string `json:"cta"`
	Duration    string `json:"duration"`
}

func (VideoScript) variation() {}

// ImagePrompts is an ordered list of at most three image generation prompts.
type ImagePrompts []string

func (ImagePrompts) variation() {}

// Text is an unstructured variation, e.g. a single social caption passing
// through the edit path.
type Text string

func (Text) variation() {}

// Edited wraps a raw edit response when no structured shape could be
// recovered.
type Edited struct {
	EditedContent string `json:"edited_content"`
}

func (Edited) variation() {}

// GenerationError is the inline marker stored in a variation slot whose
// model call failed. It marshals as a plain string.
type GenerationError string

func (GenerationError) variation() {}

// Structured reports whether v is a record-shaped variation. Structured
// originals are rendered as indented JSON in edit prompts and are eligible
// for shape-preserving reconciliation.
func Structured(v Variation) bool {
	switch v.(type) {
	case AdCopy, SocialCaptions, EmailBlocks, VideoScript, Edited:
		return true
	}
	return false
}

// GeneratedContent maps each requested content type to its ordered
// variations. Iteration and JSON key order follow request order, which a
// plain Go map would not preserve.
type GeneratedContent struct {
	order []ContentType
	items map[ContentType][]Variation
}

// NewGeneratedContent returns an empty result mapping.
func NewGeneratedContent() *GeneratedContent {
	return &GeneratedContent{items: make(map[ContentType][]Variation)}
}

// Set assigns the variations for a content type, registering the type at the
// end of the order on first assignment.
func (g *GeneratedContent) Set(ct ContentType, vs []Variation) {
	if g.items == nil {
		g.items = make(map[ContentType][]Variation)
	}
	if _, ok := g.items[ct]; !ok {
		g.order = append(g.order, ct)
	}
	g.items[ct] = vs
}

// Types returns the content types in request order.
func (g *GeneratedContent) Types() []ContentType {
	out := make([]ContentType, len(g.order))
	copy(out, g.order)
	return out
}

// Variations returns the variation list for a content type, or nil if the
// type is absent.
func (g *GeneratedContent) Variations(ct ContentType) []Variation {
	return g.items[ct]
}

// Len returns the number of content types in the result.
func (g *GeneratedContent) Len() int {
	return len(g.order)
}

// TotalVariations returns the variation count summed over all types.
func (g *GeneratedContent) TotalVariations() int {
	total := 0
	for _, vs := range g.items {
		total += len(vs)
	}
	return total
}

// MarshalJSON emits the mapping as a JSON object with keys in request order.
func (g *GeneratedContent) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ct := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(ct))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(g.items[ct])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a mapping produced by MarshalJSON, preserving key
// order and recovering the concrete variation type of each element.
func (g *GeneratedContent) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("generated content: expected JSON object")
	}

	g.order = nil
	g.items = make(map[ContentType][]Variation)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.New("generated content: expected string key")
		}

		var raws []json.RawMessage
		if err := dec.Decode(&raws); err != nil {
			return fmt.Errorf("generated content %q: %w", key, err)
		}

		ct := ContentType(key)
		vs := make([]Variation, 0, len(raws))
		for _, raw := range raws {
			v, err := unmarshalSlot(ct, raw)
			if err != nil {
				return fmt.Errorf("generated content %q: %w", key, err)
			}
			vs = append(vs, v)
		}
		g.Set(ct, vs)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// unmarshalSlot decodes one result slot. Bare strings are failed-slot
// markers; everything else decodes by content type.
func unmarshalSlot(ct ContentType, raw json.RawMessage) (Variation, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return GenerationError(s), nil
	}
	return UnmarshalVariation(ct, raw)
}

// UnmarshalVariation decodes a single variation for the given content type.
// JSON objects and arrays decode into the type's canonical record; JSON
// strings and non-JSON input decode as unstructured Text.
func UnmarshalVariation(ct ContentType, data []byte) (Variation, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty variation")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return Text(s), nil
	case '[':
		var p ImagePrompts
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return nil, err
		}
		return p, nil
	case '{':
		switch ct {
		case TypeAdCopy:
			var v AdCopy
			if err := json.Unmarshal(trimmed, &v); err != nil {
				return nil, err
			}
			return v, nil
		case TypeEmailBlocks:
			var v EmailBlocks
			if err := json.Unmarshal(trimmed, &v); err != nil {
				return nil, err
			}
			return v, nil
		case TypeVideoScripts:
			var v VideoScript
			if err := json.Unmarshal(trimmed, &v); err != nil {
				return nil, err
			}
			return v, nil
		case TypeSocialCaptions:
			var v SocialCaptions
			if err := json.Unmarshal(trimmed, &v); err != nil {
				return nil, err
			}
			return v, nil
		default:
			var v Edited
			if err := json.Unmarshal(trimmed, &v); err != nil {
				return nil, err
			}
			return v, nil
		}
	}

	// Not JSON at all; treat the file contents as plain text.
	return Text(string(trimmed)), nil
}

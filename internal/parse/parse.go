// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse converts raw model text into typed marketing records.
// The model is asked to prefix fields with "Label:" lines but is free text
// in practice, so every parser degrades through fallbacks instead of
// failing. All parsers are pure functions of the response text.
package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/content-engine/pkg/types"
)

// Fallback values for ad copy when the response has no usable structure.
const (
	fallbackSubtext    = "Compelling subtext for your product"
	fallbackCTA        = "Learn More"
	headlineTruncation = 100
)

// AdCopy recovers a headline/subtext/CTA record from labeled lines.
// Continuation lines extend the current field. When no label matches, the
// response is split on blank lines into up to three paragraphs; failing
// that, a truncated headline plus placeholder fields is produced, so the
// headline is never empty for non-empty input.
func AdCopy(text string) types.AdCopy {
	var ad types.AdCopy
	var current *string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "headline:"):
			ad.Headline = afterLabel(line, "headline:")
			current = &ad.Headline
		case strings.HasPrefix(lower, "subtext:"):
			ad.Subtext = afterLabel(line, "subtext:")
			current = &ad.Subtext
		case strings.HasPrefix(lower, "cta:"):
			ad.CTA = afterLabel(line, "cta:")
			current = &ad.CTA
		case current != nil && line != "":
			*current += " " + line
		}
	}

	if ad.Headline != "" || ad.Subtext != "" || ad.CTA != "" {
		return ad
	}

	// Second tier: blank-line paragraphs mapped in order.
	parts := strings.Split(text, "\n\n")
	if len(parts) >= 3 {
		ad = types.AdCopy{
			Headline: strings.TrimSpace(parts[0]),
			Subtext:  strings.TrimSpace(parts[1]),
			CTA:      strings.TrimSpace(parts[2]),
		}
		if ad.Headline != "" {
			return ad
		}
	}

	// Last tier: truncated response as headline plus placeholders.
	return types.AdCopy{
		Headline: truncate(text, headlineTruncation) + "...",
		Subtext:  fallbackSubtext,
		CTA:      fallbackCTA,
	}
}

// EmailBlocks recovers subject/header/product/CTA fields from labeled
// lines. Unmatched fields stay empty; there is no further fallback.
func EmailBlocks(text string) types.EmailBlocks {
	var email types.EmailBlocks
	var current *string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "subject:"):
			email.SubjectLine = afterLabel(line, "subject:")
			current = &email.SubjectLine
		case strings.HasPrefix(lower, "header:"):
			email.Header = afterLabel(line, "header:")
			current = &email.Header
		case strings.HasPrefix(lower, "product:"):
			email.ProductBlurb = afterLabel(line, "product:")
			current = &email.ProductBlurb
		case strings.HasPrefix(lower, "cta:"):
			email.CTAButton = afterLabel(line, "cta:")
			current = &email.CTAButton
		case current != nil && line != "":
			*current += " " + line
		}
	}

	return email
}

// VideoScript maps the first three blank-line blocks to hook, main content,
// and CTA. With fewer blocks the whole response becomes the main content.
// The duration is always the fixed default.
func VideoScript(text string) types.VideoScript {
	script := types.VideoScript{Duration: types.DefaultVideoDuration}

	blocks := strings.Split(text, "\n\n")
	if len(blocks) >= 3 {
		script.Hook = strings.TrimSpace(blocks[0])
		script.MainContent = strings.TrimSpace(blocks[1])
		script.CTA = strings.TrimSpace(blocks[2])
	} else {
		script.MainContent = text
	}
	return script
}

// promptMarkers is the set of leading list decorations stripped from image
// prompt lines: digits, dots, dashes, bullets, spaces.
const promptMarkers = "0123456789.-• "

// ImagePrompts extracts up to three prompt lines. Empty lines and comment
// lines are discarded, leading list markers are stripped, and a cleaned
// line must exceed ten characters to qualify. When nothing qualifies the
// raw response is returned as a single prompt.
func ImagePrompts(text string) types.ImagePrompts {
	var prompts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cleaned := strings.TrimSpace(strings.TrimLeft(line, promptMarkers))
		if utf8.RuneCountInString(cleaned) > 10 {
			prompts = append(prompts, cleaned)
		}
	}

	if len(prompts) == 0 {
		return types.ImagePrompts{text}
	}
	if len(prompts) > 3 {
		prompts = prompts[:3]
	}
	return prompts
}

// afterLabel returns the trimmed remainder of a line past its label prefix,
// matched case-insensitively by the caller.
func afterLabel(line, label string) string {
	return strings.TrimSpace(line[len(label):])
}

// truncate limits s to n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

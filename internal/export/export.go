// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders a generation result as JSON, plain text, markdown,
// HTML, or a zip archive. It consumes the result mapping as given; the
// generation pipeline has no serialization requirements of its own.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/pdiddy/content-engine/pkg/types"
)

// now is overridden in tests to pin export timestamps.
var now = time.Now

// envelope is the top-level JSON export shape.
type envelope struct {
	ExportTimestamp string                  `json:"export_timestamp"`
	Content         *types.GeneratedContent `json:"content"`
	Metadata        metadata                `json:"metadata"`
}

type metadata struct {
	TotalContentTypes int `json:"total_content_types"`
	TotalVariations   int `json:"total_variations"`
}

// JSON renders the result as an indented JSON envelope with counts.
func JSON(content *types.GeneratedContent) ([]byte, error) {
	return json.MarshalIndent(envelope{
		ExportTimestamp: now().Format(time.RFC3339),
		Content:         content,
		Metadata: metadata{
			TotalContentTypes: content.Len(),
			TotalVariations:   content.TotalVariations(),
		},
	}, "", "  ")
}

// Text renders the result as a formatted plain-text report.
func Text(content *types.GeneratedContent) string {
	var b strings.Builder
	b.WriteString("CONTENT GENERATION EXPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", now().Format("2006-01-02 15:04:05"))

	for _, ct := range content.Types() {
		fmt.Fprintf(&b, "\n\n%s\n", strings.ToUpper(string(ct)))
		b.WriteString(strings.Repeat("-", len(ct)) + "\n")

		for i, v := range content.Variations(ct) {
			fmt.Fprintf(&b, "\nVariation %d:\n", i+1)
			for _, line := range variationLines(v) {
				b.WriteString("  " + line + "\n")
			}
		}
	}
	return b.String()
}

// Markdown renders the result with one heading per content type and one
// subheading per variation.
func Markdown(content *types.GeneratedContent) string {
	var b strings.Builder
	b.WriteString("# Content Generation Export\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", now().Format("2006-01-02 15:04:05"))

	for _, ct := range content.Types() {
		fmt.Fprintf(&b, "\n## %s\n", ct)
		for i, v := range content.Variations(ct) {
			fmt.Fprintf(&b, "\n### Variation %d\n\n", i+1)
			for _, line := range variationLines(v) {
				if label, value, ok := strings.Cut(line, ": "); ok && !strings.HasPrefix(line, "- ") {
					fmt.Fprintf(&b, "**%s:** %s\n\n", label, value)
				} else {
					b.WriteString(line + "\n")
				}
			}
		}
	}
	return b.String()
}

// HTML renders the markdown report to HTML.
func HTML(content *types.GeneratedContent) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(content)), &buf); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.Bytes(), nil
}

// Zip packages the full export: the JSON and text reports, one folder per
// content type with per-variation text files and a data.json, and a README.
func Zip(content *types.GeneratedContent) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	jsonData, err := JSON(content)
	if err != nil {
		return nil, err
	}
	if err := writeZipFile(zw, "content_export.json", jsonData); err != nil {
		return nil, err
	}
	if err := writeZipFile(zw, "content_export.txt", []byte(Text(content))); err != nil {
		return nil, err
	}

	for _, ct := range content.Types() {
		folder := folderName(ct)
		variations := content.Variations(ct)

		for i, v := range variations {
			name := fmt.Sprintf("%s/variation_%d.txt", folder, i+1)
			body := strings.Join(variationLines(v), "\n")
			if err := writeZipFile(zw, name, []byte(body)); err != nil {
				return nil, err
			}
		}

		data, err := json.MarshalIndent(map[string]any{
			"content_type": ct,
			"variations":   variations,
			"count":        len(variations),
		}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling %s data: %w", ct, err)
		}
		if err := writeZipFile(zw, folder+"/data.json", data); err != nil {
			return nil, err
		}
	}

	if err := writeZipFile(zw, "README.txt", []byte(readme(content))); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	return buf.Bytes(), nil
}

func writeZipFile(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func readme(content *types.GeneratedContent) string {
	lines := []string{
		"CONTENT GENERATION EXPORT",
		strings.Repeat("=", 50),
		fmt.Sprintf("Generated: %s", now().Format("2006-01-02 15:04:05")),
		"",
		"CONTENTS:",
		"- content_export.json: Complete export in JSON format",
		"- content_export.txt: Formatted text version",
		"- Individual folders for each content type:",
	}
	for _, ct := range content.Types() {
		lines = append(lines, fmt.Sprintf("  - %s/: %s variations", folderName(ct), ct))
	}
	return strings.Join(lines, "\n") + "\n"
}

func folderName(ct types.ContentType) string {
	return strings.ToLower(strings.ReplaceAll(string(ct), " ", "_"))
}

// variationLines renders one variation as labeled lines (structured
// records), list items (image prompts), or raw text.
func variationLines(v types.Variation) []string {
	switch v := v.(type) {
	case types.AdCopy:
		return []string{
			"Headline: " + v.Headline,
			"Subtext: " + v.Subtext,
			"CTA: " + v.CTA,
		}
	case types.EmailBlocks:
		return []string{
			"Subject Line: " + v.SubjectLine,
			"Header: " + v.Header,
			"Product Blurb: " + v.ProductBlurb,
			"CTA Button: " + v.CTAButton,
		}
	case types.VideoScript:
		return []string{
			"Hook: " + v.Hook,
			"Main Content: " + v.MainContent,
			"CTA: " + v.CTA,
			"Duration: " + v.Duration,
		}
	case types.SocialCaptions:
		platforms := make([]string, 0, len(v))
		for platform := range v {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)
		lines := make([]string, 0, len(v))
		for _, platform := range platforms {
			lines = append(lines, platform+": "+v[platform])
		}
		return lines
	case types.ImagePrompts:
		lines := make([]string, 0, len(v)+1)
		lines = append(lines, "Prompts:")
		for _, p := range v {
			lines = append(lines, "- "+p)
		}
		return lines
	case types.Edited:
		return []string{"Edited Content: " + v.EditedContent}
	case types.Text:
		return []string{string(v)}
	case types.GenerationError:
		return []string{string(v)}
	}
	return []string{fmt.Sprint(v)}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt holds the prompt templates and the brand context formatter.
// Templates instruct the model to answer in a labeled-line layout that the
// parse package can recover heuristically; the model is not contractually
// obligated to comply.
package prompt

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"
)

// Template names, one per content type plus the edit pass.
const (
	TemplateAdCopy        = "ad_copy"
	TemplateSocialCaption = "social_caption"
	TemplateEmail         = "email"
	TemplateVideoScript   = "video_script"
	TemplateImagePrompt   = "image_prompt"
	TemplateEdit          = "edit"
)

// Data carries the substitution values for one render. Fields a template
// does not reference are ignored.
type Data struct {
	BrandContext    string
	ProductPrompt   string
	Platform        string
	ContentType     string
	OriginalContent string
	EditInstruction string
}

var builtinTemplates = map[string]string{
	TemplateAdCopy: `You are a professional copywriter creating compelling ad copy. Generate advertising copy based on the following context and product information.

{{.BrandContext}}

Product/Campaign: {{.ProductPrompt}}

Create compelling ad copy with the following structure:
Headline: [Create an attention-grabbing headline that hooks the audience]
Subtext: [Write persuasive subtext that explains the value proposition]
CTA: [Create a strong call-to-action button text]

Make sure the copy is engaging, benefit-focused, and matches the specified brand tone. Keep headlines under 60 characters and subtext under 150 characters.`,

	TemplateSocialCaption: `You are a social media expert creating engaging captions for {{.Platform}}. Generate a caption based on the following context and product information.

{{.BrandContext}}

Product/Campaign: {{.ProductPrompt}}

Create an engaging {{.Platform}} caption that includes:
- Hook that grabs attention in the first line
- Compelling product description
- Relevant hashtags (5-10 hashtags)
- Call-to-action appropriate for {{.Platform}}

Match the brand tone and make it platform-appropriate. For Instagram: focus on visual storytelling. For TikTok: use trending language and emojis. For LinkedIn: professional tone.`,

	TemplateEmail: `You are an email marketing specialist creating email campaign content. Generate email creative blocks based on the following context and product information.

{{.BrandContext}}

Product/Campaign: {{.ProductPrompt}}

Create email content with the following structure:
Subject: [Create a compelling subject line that increases open rates]
Header: [Write an engaging email header/greeting]
Product: [Create persuasive product description with benefits]
CTA: [Create a strong call-to-action button text]

Make sure the content drives engagement and conversions. Keep subject lines under 50 characters and focus on benefits over features.`,

	TemplateVideoScript: `You are a content creator writing scripts for short-form videos (30-60 seconds). Create a UGC-style video script based on the following context and product information.

{{.BrandContext}}

Product/Campaign: {{.ProductPrompt}}

Create a video script with:
- Strong hook in the first 3 seconds
- Engaging main content that demonstrates value
- Clear call-to-action at the end
- Natural, conversational tone
- Specific visual directions

Format as a natural speaking script that feels authentic and not overly promotional. Include timing suggestions and key visual moments.`,

	TemplateImagePrompt: `You are an art director creating prompts for AI image generation tools like DALL-E or Midjourney. Generate detailed image prompts based on the following context and product information.

{{.BrandContext}}

Product/Campaign: {{.ProductPrompt}}

Create 3 different image prompts for:
1. Product hero shot/main visual
2. Lifestyle/context shot showing product in use
3. Abstract/conceptual visual representing the brand values

Each prompt should include:
- Clear description of the main subject
- Style and aesthetic direction
- Color palette suggestions
- Composition and lighting details
- Specific technical parameters for high-quality output

Make prompts detailed enough to generate professional-quality marketing visuals.`,

	TemplateEdit: `You are a professional editor improving marketing content. Edit the following content based on the specific instruction provided.

{{.BrandContext}}

Original Content ({{.ContentType}}):
{{.OriginalContent}}

Edit Instruction: {{.EditInstruction}}

Provide the improved version maintaining the same format and structure as the original. Make sure the edit follows the instruction while keeping the content effective and on-brand.`,
}

// Store holds the parsed prompt templates.
type Store struct {
	templates map[string]*template.Template
	texts     map[string]string
}

// NewStore returns a Store with the built-in templates.
func NewStore() *Store {
	s := &Store{
		templates: make(map[string]*template.Template),
		texts:     make(map[string]string),
	}
	for name, text := range builtinTemplates {
		s.templates[name] = template.Must(template.New(name).Parse(text))
		s.texts[name] = text
	}
	return s
}

// NewStoreFromFile returns a Store with the built-in templates, overridden
// by entries from a YAML file mapping template name to template text.
// Unknown names are rejected so typos surface immediately.
func NewStoreFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading templates file: %w", err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing templates file: %w", err)
	}

	s := NewStore()
	for name, text := range overrides {
		if _, ok := builtinTemplates[name]; !ok {
			return nil, fmt.Errorf("unknown template %q in %s", name, path)
		}
		tmpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parsing template %q: %w", name, err)
		}
		s.templates[name] = tmpl
		s.texts[name] = text
	}
	return s, nil
}

// Render substitutes d into the named template.
func (s *Store) Render(name string, d Data) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, d); err != nil {
		return "", fmt.Errorf("rendering template %q: %w", name, err)
	}
	return b.String(), nil
}

// Names returns the template names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Text returns the raw template text for name.
func (s *Store) Text(name string) (string, error) {
	text, ok := s.texts[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}
	return text, nil
}

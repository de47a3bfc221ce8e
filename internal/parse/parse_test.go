// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/content-engine/pkg/types"
)

func TestAdCopy(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.AdCopy
	}{
		{
			name: "labeled lines",
			text: "Headline: Fresh Matcha\nSubtext: Try it today\nCTA: Shop Now",
			want: types.AdCopy{Headline: "Fresh Matcha", Subtext: "Try it today", CTA: "Shop Now"},
		},
		{
			name: "case-insensitive labels",
			text: "HEADLINE: Big Sale\nsubtext: Everything half off\nCta: Buy",
			want: types.AdCopy{Headline: "Big Sale", Subtext: "Everything half off", CTA: "Buy"},
		},
		{
			name: "continuation lines joined with a space",
			text: "Headline: Fresh\nMatcha\n\nSubtext: Try it\ntoday\nCTA: Go",
			want: types.AdCopy{Headline: "Fresh Matcha", Subtext: "Try it today", CTA: "Go"},
		},
		{
			name: "paragraph fallback",
			text: "Great tea for everyone\n\nIt tastes amazing and ships fast\n\nOrder today",
			want: types.AdCopy{
				Headline: "Great tea for everyone",
				Subtext:  "It tastes amazing and ships fast",
				CTA:      "Order today",
			},
		},
		{
			name: "placeholder fallback for short unlabeled text",
			text: "just one line of copy",
			want: types.AdCopy{
				Headline: "just one line of copy...",
				Subtext:  "Compelling subtext for your product",
				CTA:      "Learn More",
			},
		},
		{
			name: "partial labels keep unmatched fields empty",
			text: "Headline: Only this",
			want: types.AdCopy{Headline: "Only this"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdCopy(tt.text)
			if got != tt.want {
				t.Errorf("AdCopy() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAdCopy_HeadlineNeverEmpty(t *testing.T) {
	inputs := []string{
		"random unlabeled text",
		"a\n\nb",
		"word",
	}
	for _, in := range inputs {
		if got := AdCopy(in); got.Headline == "" {
			t.Errorf("AdCopy(%q) produced empty headline", in)
		}
	}
}

func TestAdCopy_LongFallbackTruncates(t *testing.T) {
	long := strings.Repeat("x", 250)
	got := AdCopy(long)
	if want := strings.Repeat("x", 100) + "..."; got.Headline != want {
		t.Errorf("headline = %q, want 100 runes plus ellipsis", got.Headline)
	}
}

func TestEmailBlocks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.EmailBlocks
	}{
		{
			name: "labeled lines",
			text: "Subject: Big news\nHeader: Hello friend\nProduct: A great tea\nCTA: Shop",
			want: types.EmailBlocks{
				SubjectLine:  "Big news",
				Header:       "Hello friend",
				ProductBlurb: "A great tea",
				CTAButton:    "Shop",
			},
		},
		{
			name: "no labels leaves all fields empty",
			text: "free text with no structure",
			want: types.EmailBlocks{},
		},
		{
			name: "continuation extends current field",
			text: "Product: A great tea\nwith real leaves",
			want: types.EmailBlocks{ProductBlurb: "A great tea with real leaves"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EmailBlocks(tt.text)
			if got != tt.want {
				t.Errorf("EmailBlocks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVideoScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.VideoScript
	}{
		{
			name: "three blocks",
			text: "Watch this!\n\nHere is why the product rocks.\n\nGrab yours now.",
			want: types.VideoScript{
				Hook:        "Watch this!",
				MainContent: "Here is why the product rocks.",
				CTA:         "Grab yours now.",
				Duration:    types.DefaultVideoDuration,
			},
		},
		{
			name: "fewer blocks puts everything in main content",
			text: "One long take with no breaks.",
			want: types.VideoScript{
				MainContent: "One long take with no breaks.",
				Duration:    types.DefaultVideoDuration,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VideoScript(tt.text)
			if got != tt.want {
				t.Errorf("VideoScript() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestImagePrompts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.ImagePrompts
	}{
		{
			name: "numbered list with comment and short line",
			text: "1. A red car on a beach\n2. ok\n#comment\n3. A blue car driving through mountains at sunset",
			want: types.ImagePrompts{
				"A red car on a beach",
				"A blue car driving through mountains at sunset",
			},
		},
		{
			name: "bullets stripped",
			text: "- A minimalist product shot on marble\n• A lifestyle scene in warm light",
			want: types.ImagePrompts{
				"A minimalist product shot on marble",
				"A lifestyle scene in warm light",
			},
		},
		{
			name: "at most three prompts",
			text: "1. First detailed prompt here\n2. Second detailed prompt here\n3. Third detailed prompt here\n4. Fourth detailed prompt here",
			want: types.ImagePrompts{
				"First detailed prompt here",
				"Second detailed prompt here",
				"Third detailed prompt here",
			},
		},
		{
			name: "nothing qualifies returns raw response",
			text: "short\nlines",
			want: types.ImagePrompts{"short\nlines"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImagePrompts(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ImagePrompts() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

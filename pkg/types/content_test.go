// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in      string
		want    ContentType
		wantErr bool
	}{
		{in: "Ad Copy", want: TypeAdCopy},
		{in: "ad_copy", want: TypeAdCopy},
		{in: "AD-COPY", want: TypeAdCopy},
		{in: "social media captions", want: TypeSocialCaptions},
		{in: "email_creative_blocks", want: TypeEmailBlocks},
		{in: "video-scripts", want: TypeVideoScripts},
		{in: "Image Prompts", want: TypeImagePrompts},
		{in: "banner ads", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseContentType(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseContentType(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseContentType(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseContentType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBrandTone_Valid(t *testing.T) {
	if !ToneGenZSlang.Valid() {
		t.Error("Gen Z Slang should be a valid tone")
	}
	if BrandTone("Sarcastic").Valid() {
		t.Error("Sarcastic should not be a valid tone")
	}
}

func TestGeneratedContent_OrderedMarshal(t *testing.T) {
	g := NewGeneratedContent()
	g.Set(TypeVideoScripts, []Variation{VideoScript{MainContent: "pitch", Duration: DefaultVideoDuration}})
	g.Set(TypeAdCopy, []Variation{AdCopy{Headline: "H", Subtext: "S", CTA: "C"}})

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	out := string(data)
	videoIdx := strings.Index(out, `"Video Scripts"`)
	adIdx := strings.Index(out, `"Ad Copy"`)
	if videoIdx < 0 || adIdx < 0 || videoIdx > adIdx {
		t.Errorf("keys out of insertion order: %s", out)
	}
}

func TestGeneratedContent_MarshalRoundTrip(t *testing.T) {
	g := NewGeneratedContent()
	g.Set(TypeAdCopy, []Variation{
		AdCopy{Headline: "H", Subtext: "S", CTA: "C"},
		GenerationError("Error generating variation 2: boom"),
	})
	g.Set(TypeSocialCaptions, []Variation{
		SocialCaptions{"Instagram": "insta text", "TikTok": "tok text"},
	})
	g.Set(TypeImagePrompts, []Variation{
		ImagePrompts{"A hero shot of the product"},
	})

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var back GeneratedContent
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if !reflect.DeepEqual(back.Types(), g.Types()) {
		t.Errorf("types = %v, want %v", back.Types(), g.Types())
	}

	ads := back.Variations(TypeAdCopy)
	if len(ads) != 2 {
		t.Fatalf("got %d ad copy slots, want 2", len(ads))
	}
	if ad, ok := ads[0].(AdCopy); !ok || ad.Headline != "H" {
		t.Errorf("slot 0 = %#v, want AdCopy", ads[0])
	}
	if marker, ok := ads[1].(GenerationError); !ok || !strings.Contains(string(marker), "boom") {
		t.Errorf("slot 1 = %#v, want GenerationError", ads[1])
	}

	captions, ok := back.Variations(TypeSocialCaptions)[0].(SocialCaptions)
	if !ok || captions["Instagram"] != "insta text" {
		t.Errorf("captions slot = %#v", back.Variations(TypeSocialCaptions)[0])
	}

	prompts, ok := back.Variations(TypeImagePrompts)[0].(ImagePrompts)
	if !ok || len(prompts) != 1 {
		t.Errorf("prompts slot = %#v", back.Variations(TypeImagePrompts)[0])
	}
}

func TestGeneratedContent_Counts(t *testing.T) {
	g := NewGeneratedContent()
	g.Set(TypeAdCopy, []Variation{AdCopy{}, AdCopy{}})
	g.Set(TypeVideoScripts, []Variation{VideoScript{}})

	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
	if g.TotalVariations() != 3 {
		t.Errorf("TotalVariations() = %d, want 3", g.TotalVariations())
	}
}

func TestUnmarshalVariation(t *testing.T) {
	tests := []struct {
		name string
		ct   ContentType
		data string
		want Variation
	}{
		{
			name: "ad copy object",
			ct:   TypeAdCopy,
			data: `{"headline":"H","subtext":"S","cta":"C"}`,
			want: AdCopy{Headline: "H", Subtext: "S", CTA: "C"},
		},
		{
			name: "captions object",
			ct:   TypeSocialCaptions,
			data: `{"Instagram":"hello"}`,
			want: SocialCaptions{"Instagram": "hello"},
		},
		{
			name: "prompt array",
			ct:   TypeImagePrompts,
			data: `["one detailed prompt"]`,
			want: ImagePrompts{"one detailed prompt"},
		},
		{
			name: "json string becomes text",
			ct:   TypeSocialCaptions,
			data: `"a single caption"`,
			want: Text("a single caption"),
		},
		{
			name: "plain text passthrough",
			ct:   TypeAdCopy,
			data: "not json at all",
			want: Text("not json at all"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalVariation(tt.ct, []byte(tt.data))
			if err != nil {
				t.Fatalf("UnmarshalVariation error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestStructured(t *testing.T) {
	if !Structured(AdCopy{}) || !Structured(SocialCaptions{}) || !Structured(Edited{}) {
		t.Error("record variants should be structured")
	}
	if Structured(Text("x")) || Structured(ImagePrompts{"x"}) || Structured(GenerationError("x")) {
		t.Error("text-like variants should not be structured")
	}
}

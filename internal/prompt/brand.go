// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"strings"

	"github.com/pdiddy/content-engine/pkg/types"
)

// FormatBrandContext renders a brand record as the flat text block templates
// substitute for their brand context field. One "Label: value" line per
// present field, in fixed order; absent fields produce no line. A nil or
// empty context yields the empty string. Pure function.
func FormatBrandContext(bc *types.BrandContext) string {
	if bc == nil {
		return ""
	}

	var lines []string
	if bc.BrandName != "" {
		lines = append(lines, "Brand: "+bc.BrandName)
	}
	if bc.TargetAudience != "" {
		lines = append(lines, "Target Audience: "+bc.TargetAudience)
	}
	if bc.BrandTone != "" {
		lines = append(lines, "Tone: "+string(bc.BrandTone))
	}
	if bc.Industry != "" {
		lines = append(lines, "Industry: "+bc.Industry)
	}
	if bc.KeyValues != "" {
		lines = append(lines, "Key Values: "+bc.KeyValues)
	}
	return strings.Join(lines, "\n")
}

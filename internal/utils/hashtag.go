package utils

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var hashtagRe = regexp.MustCompile(`#([\p{L}\p{M}0-9_]+)`)

// ExtractHashtags returns the distinct hashtags in text, lowercased and
// without the leading '#', in order of first appearance.
func ExtractHashtags(text string) []string {
	matches := hashtagRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := lo.Map(matches, func(m []string, _ int) string {
		return strings.ToLower(m[1])
	})
	return lo.Uniq(tags)
}

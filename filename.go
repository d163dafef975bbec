// SPDX-License-Identifier: EPL-2.0

package audsynth

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ik5/audsynth/synth"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Filename builds "<slug>-<category>[-<tempo>bpm].<ext>" for req. The slug
// is name folded to lowercase ASCII letters, digits and dashes; accents are
// stripped. An empty slug becomes "untitled".
func Filename(name string, req synth.Request, ext string) string {
	var sb strings.Builder

	sb.WriteString(Slug(name))
	sb.WriteByte('-')
	sb.WriteString(req.Category().String())
	if req.IsMusic() {
		fmt.Fprintf(&sb, "-%dbpm", req.Tempo())
	}
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		sb.WriteByte('.')
		sb.WriteString(ext)
	}

	return sb.String()
}

// Slug reduces s to a lowercase, dash separated ASCII identifier.
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}

	if sb.Len() == 0 {
		return "untitled"
	}
	return sb.String()
}

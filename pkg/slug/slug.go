package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength int
	separator string
}

// MaxLength caps the slug at n characters. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Separator replaces runs of unsupported characters. Default is "-".
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// Make lowercases s, folds diacritics to ASCII (é → e) and joins the remaining
// ASCII letters and digits with the separator. Everything else, emoji
// included, is dropped. The result never starts or ends with the separator.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-"}
	for _, opt := range opts {
		opt(cfg)
	}

	s = fold(s)

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if !isASCIIAlnum(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			if cfg.maxLength > 0 && b.Len()+len(cfg.separator)+1 > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			pendingSep = false
		}
		if cfg.maxLength > 0 && b.Len()+1 > cfg.maxLength {
			break
		}
		b.WriteRune(r)
	}

	return b.String()
}

// fold strips combining marks after canonical decomposition.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return strings.NewReplacer("ß", "ss", "æ", "ae", "Æ", "AE", "ø", "o", "Ø", "O", "ł", "l", "Ł", "L", "đ", "d", "Đ", "D").Replace(out)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

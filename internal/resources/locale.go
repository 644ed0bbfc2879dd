package resources

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Resolve picks the tag from available that best serves requested. "auto"
// and "" consult LC_ALL, LC_MESSAGES and LANG in that order. Unknown or
// unmatched locales fall back to available[0].
func Resolve(requested string, available []language.Tag) language.Tag {
	if len(available) == 0 {
		return DefaultLanguage
	}
	requested = strings.TrimSpace(requested)
	if requested == "" || strings.EqualFold(requested, "auto") {
		requested = EnvLocale()
	}
	tag, err := language.Parse(normalizePOSIX(requested))
	if err != nil {
		return available[0]
	}
	_, idx, conf := language.NewMatcher(available).Match(tag)
	if conf == language.No {
		return available[0]
	}
	return available[idx]
}

// EnvLocale returns the first non-empty POSIX locale variable.
func EnvLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// normalizePOSIX turns "zh_CN.UTF-8@euro" into "zh-CN".
func normalizePOSIX(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

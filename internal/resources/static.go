package resources

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Static is an in-memory Bundle, mostly for tests.
type Static struct {
	Lang    language.Tag
	Strings map[string]string
}

func (s Static) Tag() language.Tag { return s.Lang }

func (s Static) String(key string) (string, error) {
	v, ok := s.Strings[key]
	if !ok {
		return "", fmt.Errorf("%w: %s (%s)", ErrMissingKey, key, s.Lang)
	}
	return v, nil
}

func (s Static) StringArray(key string) ([]string, error) {
	return collectArray(key, s.String)
}

// Template substitutes {{.Name}} placeholders only.
func (s Static) Template(key string, data map[string]any) (string, error) {
	v, err := s.String(key)
	if err != nil {
		return "", err
	}
	for k, val := range data {
		v = strings.ReplaceAll(v, "{{."+k+"}}", fmt.Sprint(val))
	}
	return v, nil
}

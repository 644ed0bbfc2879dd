package resources

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var embedded embed.FS

// ErrMissingKey is returned when no locale, including the default, defines a key.
var ErrMissingKey = errors.New("missing resource key")

// DefaultLanguage is used when the requested locale has no message file.
var DefaultLanguage = language.English

// Bundle is the lookup surface the UI depends on.
type Bundle interface {
	String(key string) (string, error)
	StringArray(key string) ([]string, error)
	Template(key string, data map[string]any) (string, error)
	Tag() language.Tag
}

// Localizer is a Bundle backed by a go-i18n bundle pinned to one locale.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// Load reads the embedded message files, then any messages.*.toml in dir, and
// returns a Localizer for the best match of locale. An empty dir skips the
// override step; locale "auto" or "" reads the environment.
func Load(dir, locale string) (*Localizer, error) {
	bundle, err := NewI18nBundle(dir)
	if err != nil {
		return nil, err
	}
	tag := Resolve(locale, Available(bundle))
	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// NewI18nBundle builds the underlying go-i18n bundle.
func NewI18nBundle(dir string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(embedded, "locales/messages.*.toml")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		if _, err := bundle.LoadMessageFileFS(embedded, name); err != nil {
			return nil, fmt.Errorf("load embedded %s: %w", name, err)
		}
	}

	if strings.TrimSpace(dir) == "" {
		return bundle, nil
	}
	overrides, err := filepath.Glob(filepath.Join(dir, "messages.*.toml"))
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil {
			return nil, fmt.Errorf("resources dir: %w", statErr)
		}
	}
	for _, path := range overrides {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return bundle, nil
}

// Available lists the bundle's languages with the default language first.
func Available(bundle *i18n.Bundle) []language.Tag {
	out := []language.Tag{DefaultLanguage}
	for _, t := range bundle.LanguageTags() {
		if t == DefaultLanguage {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (l *Localizer) Tag() language.Tag { return l.tag }

func (l *Localizer) String(key string) (string, error) {
	return l.Template(key, nil)
}

// Template localizes key with go template data, e.g. {{.Country}}.
func (l *Localizer) Template(key string, data map[string]any) (string, error) {
	out, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			// go-i18n falls back to the default language and still reports
			// the miss; only a key absent there too is missing.
			if out != "" {
				return out, nil
			}
			return "", fmt.Errorf("%w: %s (%s)", ErrMissingKey, key, l.tag)
		}
		return "", fmt.Errorf("localize %s: %w", key, err)
	}
	return out, nil
}

func (l *Localizer) StringArray(key string) ([]string, error) {
	return collectArray(key, l.String)
}

func collectArray(key string, lookup func(string) (string, error)) ([]string, error) {
	var out []string
	for i := 0; ; i++ {
		s, err := lookup(key + "." + strconv.Itoa(i))
		if errors.Is(err, ErrMissingKey) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s[]", ErrMissingKey, key)
	}
	return out, nil
}

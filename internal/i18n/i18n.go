package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jackie264/wificard/internal/logging"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLanguage is used when a requested language is unknown, and for keys
// a catalog does not translate.
const DefaultLanguage = "en-US"

// Catalog holds the messages of every bundled language.
type Catalog struct {
	messages map[string]map[string]string
}

// Load reads the bundled locale files.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to open bundled locales: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS reads every <language>.yaml file at the root of fsys. Each file is
// a flat map of message key to text.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list locale files: %w", err)
	}

	c := &Catalog{messages: make(map[string]map[string]string, len(files))}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		var messages map[string]string
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}

		lang := strings.TrimSuffix(path.Base(file), ".yaml")
		c.messages[lang] = messages
	}

	if _, ok := c.messages[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("locale %s is missing", DefaultLanguage)
	}

	return c, nil
}

var loadDefault = sync.OnceValues(Load)

// Default returns the bundled catalog. The locale files are compiled in, so
// a failure here is a build defect and panics.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the text for key in lang. Unknown languages resolve to the
// closest bundled one, untranslated keys fall back to DefaultLanguage, and an
// unknown key is returned as is.
func (c *Catalog) Lookup(lang, key string) string {
	resolved := Resolve(lang)
	if msg, ok := c.messages[resolved][key]; ok {
		return msg
	}
	if msg, ok := c.messages[DefaultLanguage][key]; ok {
		return msg
	}

	logging.Debug("Missing translation",
		zap.String("lang", resolved),
		zap.String("key", key),
	)
	return key
}

// Has reports whether lang translates key itself, without falling back.
func (c *Catalog) Has(lang, key string) bool {
	_, ok := c.messages[lang][key]
	return ok
}

// Languages returns the IDs of the loaded locales, sorted.
func (c *Catalog) Languages() []string {
	ids := make([]string, 0, len(c.messages))
	for id := range c.messages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

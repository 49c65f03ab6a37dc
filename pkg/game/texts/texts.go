// Package texts resolves string keys to display templates from gettext
// catalogs. Templates may contain ~1~ markers; see screentext.Format.
package texts

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"

	"stationhud/pkg/engine/screentext"
)

// poGet looks up keys chosen at runtime; calling through a variable keeps
// vet from treating the key as a printf format.
var poGet = (*gotext.Po).Get

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en_GB"

//go:embed locales/*.po
var locales embed.FS

// Texts is one loaded catalog. A key with no translation resolves to itself,
// so catalogs never translate a key to its own spelling.
type Texts struct {
	po   *gotext.Po
	lang string
}

// Languages lists the built-in catalogs.
func Languages() []string {
	files, _ := fs.Glob(locales, "locales/*.po")
	langs := make([]string, 0, len(files))
	for _, f := range files {
		langs = append(langs, strings.TrimSuffix(path.Base(f), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// Load parses a built-in catalog.
func Load(lang string) (*Texts, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("no built-in catalog for %q (have %s): %w", lang, strings.Join(Languages(), ", "), err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Texts{po: po, lang: lang}, nil
}

// LoadFile parses a catalog from disk.
func LoadFile(filePath string) (*Texts, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Texts{po: po, lang: strings.TrimSuffix(filepath.Base(filePath), ".po")}, nil
}

// Language returns the catalog name.
func (t *Texts) Language() string {
	return t.lang
}

// Text returns the template for key, or key itself when it is missing.
func (t *Texts) Text(key string) string {
	return poGet(t.po, key)
}

// Has reports whether the catalog translates key.
func (t *Texts) Has(key string) bool {
	return key != "" && poGet(t.po, key) != key
}

// Format resolves key and substitutes args into its markers.
func (t *Texts) Format(key string, args ...string) string {
	return screentext.Format(t.Text(key), args...)
}

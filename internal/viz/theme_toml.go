package viz

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrThemeColor indicates a theme colour that is not a hex triplet.
var ErrThemeColor = errors.New("viz: invalid theme colour")

// tomlTheme is the on-disk form of a Theme. Missing colours are taken from
// the theme named in Base, or from the default theme.
type tomlTheme struct {
	Name       string `toml:"name"`
	Base       string `toml:"base"`
	Primary    string `toml:"primary"`
	Secondary  string `toml:"secondary"`
	Accent     string `toml:"accent"`
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Muted      string `toml:"muted"`
	Success    string `toml:"success"`
	Warning    string `toml:"warning"`
	Error      string `toml:"error"`
}

// LoadThemeTOML parses a theme definition.
func LoadThemeTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("viz: parse theme: %w", err)
	}
	if tt.Name == "" {
		return Theme{}, errors.New("viz: theme has no name")
	}

	t, _ := GetTheme(tt.Base)
	t.Name = tt.Name

	fields := []struct {
		key string
		val string
		dst *lipgloss.Color
	}{
		{"primary", tt.Primary, &t.Primary},
		{"secondary", tt.Secondary, &t.Secondary},
		{"accent", tt.Accent, &t.Accent},
		{"background", tt.Background, &t.Background},
		{"text", tt.Text, &t.Text},
		{"muted", tt.Muted, &t.Muted},
		{"success", tt.Success, &t.Success},
		{"warning", tt.Warning, &t.Warning},
		{"error", tt.Error, &t.Error},
	}
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		c, err := colorful.Hex(f.val)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: %s = %q", ErrThemeColor, f.key, f.val)
		}
		*f.dst = lipgloss.Color(c.Hex())
	}
	return t, nil
}

// LoadThemeFile reads one TOML theme file.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	t, err := LoadThemeTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadThemesDir registers every *.toml theme in dir. Files that fail to load
// are skipped and reported together in the returned error.
func LoadThemesDir(dir string) ([]Theme, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var loaded []Theme
	var result *multierror.Error
	for _, p := range paths {
		t, err := LoadThemeFile(p)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		Register(t)
		loaded = append(loaded, t)
	}
	return loaded, result.ErrorOrNil()
}

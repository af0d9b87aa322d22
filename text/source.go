package text

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Backend names accepted by WithBackend.
const (
	BackendHinted  = "hinted"
	BackendOutline = "outline"
	BackendGoText  = "gotext"
)

// BackendFunc creates an Engine for a font source at a pixel height.
type BackendFunc func(src *FontSource, pixelHeight int, mono bool) (Engine, error)

// backendRegistry holds registered rasterization backends.
var backendRegistry = map[string]BackendFunc{
	BackendHinted:  newHintedEngine,
	BackendOutline: newOutlineEngine,
	BackendGoText:  newGoTextEngine,
}

// RegisterBackend registers a custom rasterization backend.
// It is not safe to call concurrently with FontSource.Engine.
func RegisterBackend(name string, fn BackendFunc) {
	backendRegistry[name] = fn
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backendRegistry))
	for name := range backendRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FontSource represents a loaded font file.
// One FontSource can create multiple engines at different pixel heights.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *opentype.Font
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data: dataCopy,
		font: f,
	}
	s.addr = s
	s.name = extractFontName(f)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()
	if s.font == nil {
		return 0
	}
	return s.font.NumGlyphs()
}

// Engine creates a rasterization engine at the given pixel height.
// Errors are fatal for an atlas run: unknown backend, invalid size, or a
// backend that cannot scale the font.
func (s *FontSource) Engine(pixelHeight int, opts ...EngineOption) (Engine, error) {
	s.copyCheck()
	if s.font == nil {
		return nil, ErrSourceClosed
	}
	if pixelHeight <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, pixelHeight)
	}

	config := defaultEngineConfig(pixelHeight)
	for _, opt := range opts {
		opt(&config)
	}

	newEngine, ok := backendRegistry[config.backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, config.backend)
	}
	return newEngine(s, config.pixelHeight, config.mono)
}

// Close releases the font data. Engines created earlier keep working
// with the data they already hold.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.data = nil
	s.font = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name, falling back to the full name.
func extractFontName(f *opentype.Font) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if name, err := f.Name(nil, id); err == nil && name != "" {
			return name
		}
	}
	return "Unknown Font"
}

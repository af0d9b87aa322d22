package text

// EngineOption configures Engine creation.
type EngineOption func(*engineConfig)

// engineConfig holds configuration for an Engine.
type engineConfig struct {
	pixelHeight int
	backend     string
	mono        bool
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig(pixelHeight int) engineConfig {
	return engineConfig{
		pixelHeight: pixelHeight,
		backend:     BackendHinted,
	}
}

// WithBackend selects the rasterization backend by name.
// The default is BackendHinted.
//
// Custom backends can be registered with RegisterBackend.
func WithBackend(name string) EngineOption {
	return func(c *engineConfig) {
		c.backend = name
	}
}

// WithMonochrome makes the engine emit 1-bit bitmaps. A pixel is set
// when its coverage is at least one half.
func WithMonochrome() EngineOption {
	return func(c *engineConfig) {
		c.mono = true
	}
}

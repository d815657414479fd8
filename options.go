package arabify

// RenderOptions holds options for segmenting and rendering.
type RenderOptions struct {
	Config *RenderConfig
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithConfig sets a custom RenderConfig. Later options modify a copy of it.
func WithConfig(config *RenderConfig) Option {
	return func(opts *RenderOptions) {
		if config == nil {
			return
		}
		c := *config
		opts.Config = &c
	}
}

// WithStrategy selects the Arabic run boundary policy.
func WithStrategy(strategy Strategy) Option {
	return func(opts *RenderOptions) {
		opts.Config.Strategy = strategy
	}
}

// WithUnmatchedMarker sets how a [lang="ar"] marker without a closing marker
// is rendered.
func WithUnmatchedMarker(policy MarkerPolicy) Option {
	return func(opts *RenderOptions) {
		opts.Config.UnmatchedMarker = policy
	}
}

// WithArabicClass sets the class attribute of Arabic spans.
func WithArabicClass(class string) Option {
	return func(opts *RenderOptions) {
		opts.Config.ArabicClass = class
	}
}

// WithMarkdown enables Markdown parsing of multi-paragraph fields.
func WithMarkdown(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.Config.Markdown = enable
	}
}

// defaultRenderOptions returns the default options with a private copy of
// the default config.
func defaultRenderOptions() *RenderOptions {
	c := *DefaultConfig()
	return &RenderOptions{
		Config: &c,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

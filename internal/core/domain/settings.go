package domain

// AppSettings holds the user-configurable application settings.
// The corpus itself is the only configuration surface of the core;
// these settings belong to the adapter layer (default presentation and
// transport options).
type AppSettings struct {
	// DefaultTitle is used by front ends when the caller supplies no
	// layout title.
	DefaultTitle string

	// SearchLimit is the default maximum number of search results.
	SearchLimit int

	// HTTPAddr is the listen address for the MCP HTTP transport.
	HTTPAddr string

	// Theme is the daisyUI theme name applied to generated documents.
	Theme string
}

// DefaultAppSettings returns the built-in defaults.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		DefaultTitle: "My App",
		SearchLimit:  DefaultSearchLimit,
		HTTPAddr:     ":8080",
		Theme:        "light",
	}
}

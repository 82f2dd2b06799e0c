package subject

// Options for the Enricher
type EnrichmentOptions struct {
	IPCountryOptions IPCountryOptions
	UAParserOptions  UAParserOptions
}

type OutputLoggerOptions struct {
	LogCallback func(message string, err error)
	EnableDebug bool
}

type IPCountryOptions struct {
	Disabled     bool // Fully disable IP to country lookup
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}

type UAParserOptions struct {
	Disabled     bool // Fully disable UA parser
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}

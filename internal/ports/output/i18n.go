package output

// Translator resolves catalog keys for a single locale. A Translator is built
// per request and is never shared across locales.
type Translator interface {
	// Locale returns the locale the translator was built for.
	Locale() string
	// Resolve returns the value for key. Sequence values resolve to one
	// randomly chosen element.
	Resolve(key string) (string, error)
	// Localize is Resolve with template data for {{.Field}} placeholders in
	// scalar messages. data may be nil.
	Localize(key string, data map[string]any) (string, error)
}

// Localizer builds the Translator for a request locale.
type Localizer interface {
	For(locale string) Translator
}

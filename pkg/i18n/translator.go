package i18n

// Translator fixes the language for repeated lookups against a Loader.
type Translator struct {
	loader   *Loader
	language string
}

// NewTranslator creates a Translator for the given language.
// If language is empty, the first configured language is used.
func NewTranslator(loader *Loader, language string) *Translator {
	if loader == nil {
		panic("i18n: loader is not provided")
	}
	if language == "" && len(loader.languages) > 0 {
		language = loader.languages[0]
	}
	return &Translator{
		loader:   loader,
		language: normalizeName(language),
	}
}

// T translates keyPath, falling back to keyPath itself.
func (t *Translator) T(keyPath string, placeholders ...M) string {
	return t.loader.T(t.language, keyPath, placeholders...)
}

// Get resolves keyPath in the translator's language.
func (t *Translator) Get(keyPath string, placeholders ...M) (Value, bool) {
	return t.loader.Get(t.language, keyPath, placeholders...)
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.language
}

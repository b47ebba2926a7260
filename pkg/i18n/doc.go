// Package i18n loads localization resources from a directory tree and resolves
// dotted key paths against them.
//
// The tree follows the convention {path}/{lang}/{namespace}.json. Initialize
// creates whatever is missing (the base directory, language directories and
// namespace files containing an empty object) and loads every namespace file
// that already exists. Existing files are never modified.
//
// # Basic Usage
//
//	loader, err := i18n.New(
//		i18n.WithPath("lang"),
//		i18n.WithLanguages("en-US", "de-DE"),
//		i18n.WithNamespaces("errors", "mail"),
//		i18n.WithDebug(false),
//	)
//	if err != nil {
//		return err
//	}
//	if err := loader.Initialize(ctx); err != nil {
//		log.Error("translations partially loaded", "error", err)
//	}
//
//	// lang/en-us/errors.json: {"notFound": {"message": "{{item}} not found"}}
//	msg, ok := loader.GetString("en-us", "errors.notFound.message", i18n.M{"item": "User"})
//	// msg == "User not found", ok == true
//
// Language codes and namespace names are lower-cased on intake, so "en-US"
// and "en-us" address the same directory.
//
// # Key Paths
//
// The first segment of a key path names the namespace; each following
// segment selects an object member or an array index. Lookups never fail
// loudly: an unknown language, namespace or key yields ok == false. T returns
// the key path itself in that case, which is convenient for rendering.
//
// # Placeholders
//
// String values may contain {{name}} tokens. They are substituted only when
// at least one placeholder map is passed; tokens without a value are left
// untouched and substituted text is not scanned again.
//
// # Errors
//
// Initialize reports ErrDirectoryAccess for directory problems and
// ErrNamespaceFile for namespace file problems, including malformed JSON.
// A failing language or namespace does not stop the others from loading.
// The underlying cause stays reachable with errors.Is and errors.As.
//
// # File Formats
//
// WithFileFormat(FormatYAML) switches the tree to {lang}/{namespace}.yaml files.
// New files still contain "{}", which is an empty mapping in YAML.
//
// # Thread Safety
//
// Configuration is immutable after New. Initialize publishes the loaded
// documents atomically, so Get, GetString and T can be called concurrently,
// including while a later Initialize is running.
package i18n

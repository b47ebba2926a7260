package i18n

import "errors"

var (
	ErrEmptyLanguage   = errors.New("i18n: language cannot be empty")
	ErrEmptyNamespace  = errors.New("i18n: namespace cannot be empty")
	ErrInvalidName     = errors.New("i18n: name cannot be used as a path segment")
	ErrEmptyPath       = errors.New("i18n: base path cannot be empty")
	ErrDirectoryAccess = errors.New("i18n: directory access failed")
	ErrNamespaceFile   = errors.New("i18n: namespace file failed")
	ErrNotInitialized  = errors.New("i18n: loader is not initialized")
)

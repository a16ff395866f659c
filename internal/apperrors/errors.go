package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrImportParse indicates that an import payload could not be parsed. Nothing is imported.
var ErrImportParse = errors.New("import failed")

// ErrUnauthorized indicates invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

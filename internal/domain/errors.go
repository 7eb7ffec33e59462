package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource (a city slug, a comparison slug, a session) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. malformed session id, latitude out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrSlugCollision is returned when two distinct registry cities produce the
// same URL slug. One of them would be unreachable, so startup must abort.
var ErrSlugCollision = errors.New("slug collision")

package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// Upstream provider failures. Handlers map these onto the status codes the
// storefront exposes for each provider.

// ErrCityNotFound indicates the weather provider does not know the requested city.
var ErrCityNotFound = errors.New("city not found")

// ErrUpstreamAuth indicates a provider rejected our API key.
var ErrUpstreamAuth = errors.New("upstream authentication failed")

// ErrUpstreamRateLimited indicates a provider throttled us.
var ErrUpstreamRateLimited = errors.New("upstream rate limit exceeded")

// ErrUpstreamUnavailable covers transient provider failures (5xx, network, open breaker).
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

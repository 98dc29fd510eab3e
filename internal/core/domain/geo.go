package domain

import "errors"

// ErrUpstreamUnavailable is the single failure the lookup gateway surfaces.
// Every non-success outcome of an upstream call (dial error, non-2xx status,
// undecodable body) is remapped into it, wrapped with the underlying cause.
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

// Country and City are pass-through values from the country/city service.
// They are never persisted locally; they only exist as wire payloads.
type Country struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type City struct {
	Name string `json:"name"`
}

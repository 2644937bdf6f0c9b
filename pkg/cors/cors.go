// Package cors answers browser preflight requests and decorates responses
// for a single allowed origin.
package cors

import (
	"net/http"
	"strconv"
)

const (
	HeaderOrigin         = "Origin"
	HeaderRequestMethod  = "Access-Control-Request-Method"
	HeaderRequestHeaders = "Access-Control-Request-Headers"

	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderMaxAge       = "Access-Control-Max-Age"
	HeaderAllow        = "Allow"

	// MaxAge is how long browsers may cache a preflight result, in seconds.
	MaxAge = 86400

	PreflightMethods = "POST, OPTIONS"
	SubmitMethods    = "POST"
)

// IsPreflightRequest reports whether r carries all three preflight headers.
// Presence is what counts: an empty value still qualifies.
func IsPreflightRequest(r *http.Request) bool {
	return hasHeader(r, HeaderOrigin) &&
		hasHeader(r, HeaderRequestMethod) &&
		hasHeader(r, HeaderRequestHeaders)
}

// Preflight answers an OPTIONS request with status 200. A full CORS preflight
// gets the allow headers with the requested headers echoed back verbatim; any
// other OPTIONS request gets only an Allow header.
func Preflight(w http.ResponseWriter, r *http.Request, origin string) {
	h := w.Header()
	if IsPreflightRequest(r) {
		h.Set(HeaderAllowOrigin, origin)
		h.Set(HeaderAllowMethods, PreflightMethods)
		h.Set(HeaderMaxAge, strconv.Itoa(MaxAge))
		h.Set(HeaderAllowHeaders, r.Header.Get(HeaderRequestHeaders))
	} else {
		h.Set(HeaderAllow, PreflightMethods)
	}
	w.WriteHeader(http.StatusOK)
}

// Allow sets the CORS headers of an actual (non-preflight) response.
func Allow(w http.ResponseWriter, origin, methods string) {
	h := w.Header()
	h.Set(HeaderAllowOrigin, origin)
	h.Set(HeaderAllowMethods, methods)
	h.Set(HeaderMaxAge, strconv.Itoa(MaxAge))
}

func hasHeader(r *http.Request, name string) bool {
	_, ok := r.Header[http.CanonicalHeaderKey(name)]
	return ok
}

// Package gateway exposes the /auth endpoints used to sign in to the remote
// desktop and to check, from a reverse proxy, if a request carries a valid
// session.
//
// The gateway keeps no state between requests, everything it needs to
// know about a session lives in the selkies_session cookie (see package
// session). The states are:
//
//	anonymous
//	    no cookie, or a cookie that fails validation
//	authenticated
//	    a cookie minted by POST /auth/login that has not expired yet
//
// Proxies should call GET /auth/verify for every protected request and
// only let the request through on a 200 response (nginx auth_request,
// traefik forwardAuth, ...). Alternatively, Protect can wrap a handler
// directly.
package gateway

package authproxy

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/linuxserver/docker-webtop/gateway"
	"github.com/linuxserver/docker-webtop/internal/logutil"
)

type (
	UpstreamWithoutHost struct {
		URL string
	}
)

var (
	methods = []string{
		"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD",
	}
)

func (u UpstreamWithoutHost) Error() string {
	return fmt.Sprintf("upstream url %v does not have a host", u.URL)
}

// AsHandler serves the gateway routes under /auth/ and forwards everything
// else to upstream, as long as the request carries a valid session.
//
// Use it when there is no reverse proxy in front of the gateway able to
// issue auth subrequests.
func AsHandler(ctx context.Context, gw *gateway.Gateway, upstream *url.URL) (http.Handler, error) {
	if upstream == nil || upstream.Host == "" {
		return nil, UpstreamWithoutHost{URL: fmt.Sprint(upstream)}
	}
	log := logutil.GetOrDefault(ctx).With().Str("upstream", upstream.Redacted()).Logger()

	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error().Err(err).Str("http.path", r.URL.Path).Msg("Upstream request failed")
		http.Error(w, "upstream is not available", http.StatusBadGateway)
	}

	router := httprouter.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false
	router.HandleOPTIONS = false

	auth := gw.Handler()
	for _, m := range methods {
		router.Handler(m, gateway.PathPrefix+"/*path", auth)
	}

	// everything else belongs to the remote desktop
	router.NotFound = gw.Protect(proxy)

	log.Info().Msg("Proxying authenticated requests")
	return router, nil
}

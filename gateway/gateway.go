package gateway

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/linuxserver/docker-webtop/internal/logutil"
	"github.com/linuxserver/docker-webtop/session"
)

const (
	CookieName = "selkies_session"

	PathPrefix = "/auth"
	LoginPath  = PathPrefix + "/login"
	LogoutPath = PathPrefix + "/logout"
	VerifyPath = PathPrefix + "/verify"

	invalidCredentials = "Invalid credentials"
	maxFormSize        = 64 << 10
)

type (
	// Renderer returns the login page, message is empty
	// unless the page should display an error.
	Renderer func(message string) []byte

	Verifier interface {
		Verify(username, password string) bool
	}

	Options struct {
		// SecureCookie adds the Secure attribute to the session cookie,
		// enable it when the gateway sits behind a TLS terminating proxy.
		SecureCookie bool
		// Clock defaults to time.Now
		Clock func() time.Time
	}

	Gateway struct {
		creds        Verifier
		codec        *session.Codec
		page         Renderer
		secureCookie bool
		clock        func() time.Time
		routes       []route
	}

	route struct {
		method string
		path   string
		handle httprouter.Handle
	}
)

func New(creds Verifier, codec *session.Codec, page Renderer, opts Options) *Gateway {
	g := &Gateway{
		creds:        creds,
		codec:        codec,
		page:         page,
		secureCookie: opts.SecureCookie,
		clock:        opts.Clock,
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	g.routes = []route{
		{http.MethodGet, LoginPath, g.loginPage},
		{http.MethodPost, LoginPath, g.login},
		{http.MethodGet, LogoutPath, g.logout},
		{http.MethodGet, VerifyPath, g.verify},
	}
	return g
}

// Handler returns the http handler serving all /auth routes.
//
// Routes also match any path that starts with them (/auth/verify/x is
// still a verify call). GET requests for anything else show the login page,
// other methods get a 404.
func (g *Gateway) Handler() http.Handler {
	router := httprouter.New()
	// redirects would turn a verify subrequest into a 301
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false
	router.HandleOPTIONS = false
	for _, rt := range g.routes {
		router.Handle(rt.method, rt.path, rt.handle)
	}
	router.NotFound = http.HandlerFunc(g.fallback)
	return router
}

// Authenticated returns the user owning the session cookie of r,
// ok is false for anonymous requests.
func (g *Gateway) Authenticated(r *http.Request) (user string, ok bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	return g.codec.Validate(c.Value, g.clock())
}

// Protect only calls sensitive for authenticated requests, anonymous GETs
// are sent to the login page and everything else gets a 401.
func (g *Gateway) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := g.Authenticated(r); ok {
			sensitive.ServeHTTP(w, r)
			return
		}
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func (g *Gateway) fallback(w http.ResponseWriter, r *http.Request) {
	for _, rt := range g.routes {
		if r.Method == rt.method && strings.HasPrefix(r.URL.Path, rt.path) {
			rt.handle(w, r, nil)
			return
		}
	}
	if r.Method == http.MethodGet {
		writePage(w, http.StatusOK, g.page(""))
		return
	}
	log := logutil.GetOrDefault(r.Context())
	log.Debug().Str("http.method", r.Method).Str("http.path", r.URL.Path).Msg("No route")
	http.NotFound(w, r)
}

func writePage(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(body)
}

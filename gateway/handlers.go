package gateway

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/linuxserver/docker-webtop/internal/logutil"
)

func (g *Gateway) loginPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writePage(w, http.StatusOK, g.page(""))
}

func (g *Gateway) login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := logutil.GetOrDefault(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	// clients that omit the content type still send a urlencoded form
	if r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// a body that cannot be parsed is the same as an empty form
	var username, password string
	if err := r.ParseForm(); err != nil {
		log.Debug().Err(err).Msg("Unable to parse login form")
	} else {
		username = r.PostForm.Get("username")
		password = r.PostForm.Get("password")
	}

	if !g.creds.Verify(username, password) {
		writePage(w, http.StatusUnauthorized, g.page(invalidCredentials))
		return
	}
	token, err := g.codec.Encode(username, g.clock())
	if err != nil {
		log.Error().Err(err).Msg("Unable to create session token")
		http.Error(w, "unable to create session", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, g.cookie(token, time.Time{}))
	log.Debug().Msg("Session created")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (g *Gateway) logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, g.cookie("deleted", time.Unix(0, 0)))
	http.Redirect(w, r, LoginPath, http.StatusFound)
}

// verify answers auth subrequests, it never writes a body.
func (g *Gateway) verify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, ok := g.Authenticated(r); ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusUnauthorized)
}

// cookie builds the session cookie, a non-zero expires asks the
// browser to drop it.
func (g *Gateway) cookie(value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   g.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if !expires.IsZero() {
		c.Expires = expires
		c.MaxAge = -1
	}
	return c
}

package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanaburkart/portfolio/internal/config"
	"github.com/hanaburkart/portfolio/internal/prefs"
	"github.com/hanaburkart/portfolio/internal/theme"
)

// themeCookieMaxAge keeps an explicit choice for a year.
const themeCookieMaxAge = 365 * 24 * 60 * 60

// cookieStore keeps preferences in cookies of one request/response pair.
type cookieStore struct {
	c      *gin.Context
	secure bool
}

var _ prefs.Store = cookieStore{}

func (s cookieStore) Get(key string) (string, error) {
	v, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", prefs.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cookie %q: %w", key, err)
	}
	return v, nil
}

func (s cookieStore) Set(key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, themeCookieMaxAge, "/", "", s.secure, true)
	return nil
}

func (s cookieStore) Delete(key string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, "", -1, "/", "", s.secure, true)
	return nil
}

// clientHint is the request's Sec-CH-Prefers-Color-Scheme value. It is
// fixed for the request, so subscriptions never fire.
type clientHint string

var _ theme.SystemSignal = clientHint("")

func (h clientHint) PrefersDark() bool {
	return strings.EqualFold(strings.Trim(string(h), `" `), "dark")
}

func (clientHint) Subscribe(func(bool)) func() {
	return func() {}
}

// themeController builds a controller scoped to one request.
func (s *Server) themeController(c *gin.Context) *theme.Controller {
	return theme.NewController(
		cookieStore{c: c, secure: s.config.Env == config.EnvProduction},
		clientHint(c.GetHeader(headerPrefersColorScheme)),
		theme.WithLogger(s.logger),
	)
}

type themeResponse struct {
	Effective         string `json:"effective"`
	Explicit          string `json:"explicit,omitempty"`
	SystemPrefersDark bool   `json:"system_prefers_dark"`
}

func newThemeResponse(p theme.Preference) themeResponse {
	resp := themeResponse{
		Effective:         p.Effective.String(),
		SystemPrefersDark: p.SystemPrefersDark,
	}
	if p.HasExplicit() {
		resp.Explicit = p.Explicit.String()
	}
	return resp
}

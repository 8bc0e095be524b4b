package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/require"

	"github.com/ligafc/matchday/internal/api/middleware"
	"github.com/ligafc/matchday/internal/league"
	"github.com/ligafc/matchday/internal/session"
	"github.com/ligafc/matchday/internal/web"
)

// today is the fixed server date used by challenge tests.
var today = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

// testEnv wires handlers to a real session manager and renderer.
type testEnv struct {
	t       *testing.T
	mgr     *session.Manager
	cookies *securecookie.SecureCookie
	views   *web.Renderer
	sess    *session.Session
	cookie  *http.Cookie
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	mgr := session.NewManager(func() *league.State {
		return league.NewState(
			league.Team{Name: "Sua Equipa", City: "Lobito", Contact: "admin@meu.com"},
			league.WithClock(fixedClock),
		)
	})
	codec := securecookie.New(securecookie.GenerateRandomKey(32), nil)
	views, err := web.NewRenderer(web.Site{Title: "Test League"})
	require.NoError(t, err)

	sess := mgr.Create()
	encoded, err := codec.Encode(middleware.SessionCookieName, sess.ID)
	require.NoError(t, err)

	return &testEnv{
		t:       t,
		mgr:     mgr,
		cookies: codec,
		views:   views,
		sess:    sess,
		cookie:  &http.Cookie{Name: middleware.SessionCookieName, Value: encoded},
	}
}

// state is the league state of the env's session.
func (e *testEnv) state() *league.State {
	return e.sess.State
}

// serve runs h behind the session middleware with the env's session cookie.
func (e *testEnv) serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	e.t.Helper()
	req.AddCookie(e.cookie)
	w := httptest.NewRecorder()
	middleware.Session(e.mgr, e.cookies, false)(h).ServeHTTP(w, req)
	return w
}

func (e *testEnv) registerTeam(name string) league.Team {
	e.t.Helper()
	team, err := e.state().RegisterTeam(league.RegisterTeamInput{Name: name, City: "Lobito", Contact: name + "@x.com"})
	require.NoError(e.t, err)
	return team
}

func (e *testEnv) challenge(opponent string) league.MatchRequest {
	e.t.Helper()
	req, err := e.state().Challenge(league.ChallengeInput{Opponent: opponent, Date: "2025-01-01", Location: "Stadium A"})
	require.NoError(e.t, err)
	return req
}

func getRequest(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withURLParams attaches chi route parameters to req.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}

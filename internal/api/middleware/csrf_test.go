package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligafc/matchday/internal/api/middleware"
)

func TestCSRF_RejectsPostWithoutToken(t *testing.T) {
	called := false
	handler := middleware.RequestID(middleware.CSRF(securecookie.GenerateRandomKey(32), false)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }),
	))

	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader("name=Lions"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestCSRF_AcceptsPostWithToken(t *testing.T) {
	var token string
	handler := middleware.CSRF(securecookie.GenerateRandomKey(32), false)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				token = csrf.Token(r)
			}
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	getW := httptest.NewRecorder()
	handler.ServeHTTP(getW, httptest.NewRequest(http.MethodGet, "/teams", nil))
	require.NotEmpty(t, token)
	cookies := getW.Result().Cookies()
	require.NotEmpty(t, cookies)

	form := url.Values{middleware.CSRFFieldName: {token}, "name": {"Lions"}}
	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

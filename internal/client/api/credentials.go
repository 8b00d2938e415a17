package api

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"golang.org/x/net/publicsuffix"
)

// Credentials holds the ambient session cookie of one console session.
// It is passed to HTTPClient explicitly so tests and parallel sessions never
// share state through globals.
type Credentials struct {
	mu  sync.Mutex
	jar http.CookieJar
}

// NewCredentials returns empty credentials backed by a public-suffix aware jar.
func NewCredentials() (*Credentials, error) {
	jar, err := newJar()
	if err != nil {
		return nil, err
	}
	return &Credentials{jar: jar}, nil
}

// CredentialsFromJar wraps an existing jar.
func CredentialsFromJar(jar http.CookieJar) *Credentials {
	return &Credentials{jar: jar}
}

func newJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

// Cookies returns the cookies to send to u.
func (c *Credentials) Cookies(u *url.URL) []*http.Cookie {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.jar.Cookies(u)
}

// Store records cookies returned by u.
func (c *Credentials) Store(u *url.URL, cookies []*http.Cookie) {
	if len(cookies) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jar.SetCookies(u, cookies)
}

// Clear forgets every stored cookie.
func (c *Credentials) Clear() error {
	jar, err := newJar()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.jar = jar
	c.mu.Unlock()
	return nil
}

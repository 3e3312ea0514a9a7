package testutil

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

// noRedirectClient keeps redirect responses visible to assertions.
var noRedirectClient = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// HTTPGet sends a GET request and returns the status code and body.
func HTTPGet(t testing.TB, rawURL string) (int, string) {
	t.Helper()
	resp, err := noRedirectClient.Get(rawURL)
	if err != nil {
		t.Fatalf("get %s: %v", rawURL, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

// HTTPPostForm sends a form POST and returns the status code and body.
func HTTPPostForm(t testing.TB, rawURL string, form url.Values) (int, string) {
	t.Helper()
	resp, err := noRedirectClient.Post(rawURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("post %s: %v", rawURL, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

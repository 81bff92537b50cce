//go:build staging

package staging

import (
	"net/http"
	"strings"
	"testing"
)

func TestAPIRequiresKey(t *testing.T) {
	for _, key := range []string{"", "definitely-not-the-key"} {
		resp, _ := sendRequest(t, http.MethodGet, "/api/v1/on/github/octocat", nil, key)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("key %q: expected status 401, got %d", key, resp.StatusCode)
		}
	}

	_, body := sendRequest(t, http.MethodGet, "/metrics", nil, "")
	if !strings.Contains(string(body), "pledgeboard_auth_failures_total") {
		t.Errorf("Expected rejected keys to be counted in /metrics")
	}
}

func TestAPIRepliesAreNotCached(t *testing.T) {
	resp, _ := makeRequest(t, http.MethodGet, "/api/v1/accounts/not-a-uuid/backers", nil)
	if got := resp.Header.Get("Cache-Control"); got != "no-store" {
		t.Errorf("Expected Cache-Control no-store, got %q", got)
	}
}

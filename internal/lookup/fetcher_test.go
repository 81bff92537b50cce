package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
)

// newUpstream serves every network from one mux
func newUpstream(t *testing.T, routes map[string]http.HandlerFunc) (*HTTPFetcher, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	f := NewHTTPFetcher(Config{
		Timeout:            200 * time.Millisecond,
		GitHubAPIURL:       srv.URL,
		GitHubToken:        "gh-token",
		BitbucketAPIURL:    srv.URL + "/",
		TwitterAPIURL:      srv.URL,
		TwitterBearerToken: "tw-token",
	})
	return f, srv
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestFetchProfile_Networks(t *testing.T) {
	var sawAuth, sawUserAgent string
	f, _ := newUpstream(t, map[string]http.HandlerFunc{
		"/users/alice": func(w http.ResponseWriter, r *http.Request) {
			sawAuth = r.Header.Get("Authorization")
			sawUserAgent = r.Header.Get("User-Agent")
			reply(http.StatusOK, `{"id":1775515,"login":"alice","name":" Alice A ","avatar_url":"https://avatars.example/a.png"}`)(w, r)
		},
		"/2.0/users/bob": reply(http.StatusOK,
			`{"uuid":"{b0b}","username":"bob","display_name":"Bob","links":{"avatar":{"href":"https://bb.example/bob.png"}}}`),
		"/2.0/users/nick": reply(http.StatusOK, `{"uuid":"{n1}","nickname":"nick"}`),
		"/2/users/by/username/carol": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tw-token", r.Header.Get("Authorization"))
			assert.Equal(t, "profile_image_url", r.URL.Query().Get("user.fields"))
			reply(http.StatusOK, `{"data":{"id":"42","username":"carol","name":"Carol","profile_image_url":"https://tw.example/c.png"}}`)(w, r)
		},
	})
	ctx := context.Background()

	tests := []struct {
		name    string
		network domain.Network
		handle  string
		want    domain.Profile
	}{
		{"github", domain.NetworkGitHub, "alice",
			domain.Profile{ExternalID: "1775515", Handle: "alice", DisplayName: "Alice A", AvatarURL: "https://avatars.example/a.png"}},
		{"bitbucket", domain.NetworkBitbucket, "bob",
			domain.Profile{ExternalID: "{b0b}", Handle: "bob", DisplayName: "Bob", AvatarURL: "https://bb.example/bob.png"}},
		{"bitbucket nickname fallback", domain.NetworkBitbucket, "nick",
			domain.Profile{ExternalID: "{n1}", Handle: "nick"}},
		{"twitter", domain.NetworkTwitter, "carol",
			domain.Profile{ExternalID: "42", Handle: "carol", DisplayName: "Carol", AvatarURL: "https://tw.example/c.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.FetchProfile(ctx, tt.network, tt.handle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "Bearer gh-token", sawAuth)
	assert.Equal(t, DefaultUserAgent, sawUserAgent)
}

func TestFetchProfile_Failures(t *testing.T) {
	f, _ := newUpstream(t, map[string]http.HandlerFunc{
		"/users/ghost":               reply(http.StatusNotFound, `{"message":"Not Found"}`),
		"/users/broken":              reply(http.StatusInternalServerError, `oops`),
		"/users/limited":             reply(http.StatusForbidden, `{"message":"rate limit"}`),
		"/users/garbled":             reply(http.StatusOK, `{"id":`),
		"/users/noid":                reply(http.StatusOK, `{"login":"noid"}`),
		"/2/users/by/username/ghost": reply(http.StatusOK, `{"errors":[{"title":"Not Found Error"}]}`),
		"/users/slow": func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		},
	})
	ctx := context.Background()

	tests := []struct {
		name            string
		network         domain.Network
		handle          string
		wantErr         error
		wantUnavailable bool
	}{
		{"404 is not found", domain.NetworkGitHub, "ghost", domain.ErrNotFound, false},
		{"twitter empty data is not found", domain.NetworkTwitter, "ghost", domain.ErrNotFound, false},
		{"500 is unavailable", domain.NetworkGitHub, "broken", domain.ErrNotFound, true},
		{"403 is unavailable", domain.NetworkGitHub, "limited", domain.ErrNotFound, true},
		{"timeout is unavailable", domain.NetworkGitHub, "slow", domain.ErrNotFound, true},
		{"malformed body", domain.NetworkGitHub, "garbled", domain.ErrInvalidProfile, false},
		{"missing id", domain.NetworkGitHub, "noid", domain.ErrInvalidProfile, false},
		{"blank handle", domain.NetworkGitHub, "  ", domain.ErrNotFound, false},
		{"unknown network", domain.Network("friendster"), "alice", domain.ErrInvalidNetwork, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.FetchProfile(ctx, tt.network, tt.handle)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantUnavailable, errors.Is(err, domain.ErrUnavailable))
		})
	}
}

func TestFetchProfile_UnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := NewHTTPFetcher(Config{GitHubAPIURL: url, Timeout: time.Second})
	_, err := f.FetchProfile(context.Background(), domain.NetworkGitHub, "alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestFetchProfile_EscapesHandle(t *testing.T) {
	var gotPath string
	f, _ := newUpstream(t, map[string]http.HandlerFunc{
		"/users/": func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			reply(http.StatusNotFound, `{}`)(w, r)
		},
	})
	_, err := f.FetchProfile(context.Background(), domain.NetworkGitHub, "a/b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "/users/a%2Fb", gotPath)
}

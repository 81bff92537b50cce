package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
)

// Provider knows one network's user endpoint and reply shape
type Provider interface {
	NewRequest(ctx context.Context, handle string) (*http.Request, error)

	// Decode parses a 2xx reply. found is false when the reply is a
	// well-formed "no such user".
	Decode(body io.Reader) (profile domain.Profile, found bool, err error)
}

func newGet(ctx context.Context, base, path, token, userAgent string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// GitHubProvider reads GET /users/{handle}
type GitHubProvider struct {
	BaseURL   string
	Token     string
	UserAgent string
}

func (p GitHubProvider) NewRequest(ctx context.Context, handle string) (*http.Request, error) {
	req, err := newGet(ctx, p.BaseURL, "/users/"+url.PathEscape(handle), p.Token, p.UserAgent)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	return req, nil
}

func (p GitHubProvider) Decode(body io.Reader) (domain.Profile, bool, error) {
	var user struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := json.NewDecoder(body).Decode(&user); err != nil {
		return domain.Profile{}, false, err
	}
	var id string
	if user.ID != 0 {
		id = strconv.FormatInt(user.ID, 10)
	}
	return domain.Profile{ExternalID: id, Handle: user.Login, DisplayName: user.Name, AvatarURL: user.AvatarURL}, true, nil
}

// BitbucketProvider reads GET /2.0/users/{handle}
type BitbucketProvider struct {
	BaseURL   string
	UserAgent string
}

func (p BitbucketProvider) NewRequest(ctx context.Context, handle string) (*http.Request, error) {
	return newGet(ctx, p.BaseURL, "/2.0/users/"+url.PathEscape(handle), "", p.UserAgent)
}

func (p BitbucketProvider) Decode(body io.Reader) (domain.Profile, bool, error) {
	var user struct {
		UUID        string `json:"uuid"`
		Username    string `json:"username"`
		Nickname    string `json:"nickname"`
		DisplayName string `json:"display_name"`
		Links       struct {
			Avatar struct {
				Href string `json:"href"`
			} `json:"avatar"`
		} `json:"links"`
	}
	if err := json.NewDecoder(body).Decode(&user); err != nil {
		return domain.Profile{}, false, err
	}
	handle := user.Username
	if handle == "" {
		handle = user.Nickname
	}
	return domain.Profile{ExternalID: user.UUID, Handle: handle, DisplayName: user.DisplayName, AvatarURL: user.Links.Avatar.Href}, true, nil
}

// TwitterProvider reads GET /2/users/by/username/{handle}
type TwitterProvider struct {
	BaseURL     string
	BearerToken string
	UserAgent   string
}

func (p TwitterProvider) NewRequest(ctx context.Context, handle string) (*http.Request, error) {
	path := "/2/users/by/username/" + url.PathEscape(handle) + "?user.fields=profile_image_url"
	return newGet(ctx, p.BaseURL, path, p.BearerToken, p.UserAgent)
}

// Decode treats a 200 with no data object as not found; the v2 API reports
// unknown usernames that way.
func (p TwitterProvider) Decode(body io.Reader) (domain.Profile, bool, error) {
	var reply struct {
		Data *struct {
			ID              string `json:"id"`
			Username        string `json:"username"`
			Name            string `json:"name"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(body).Decode(&reply); err != nil {
		return domain.Profile{}, false, err
	}
	if reply.Data == nil {
		return domain.Profile{}, false, nil
	}
	d := reply.Data
	return domain.Profile{ExternalID: d.ID, Handle: d.Username, DisplayName: d.Name, AvatarURL: d.ProfileImageURL}, true, nil
}

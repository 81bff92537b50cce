package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
)

func validResolveRequest() ResolveRequest {
	return ResolveRequest{Network: "github", ExternalID: "1775515", Handle: "alice"}
}

func TestValidator_NetworkValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		network string
		wantErr bool
	}{
		{"github", string(domain.NetworkGitHub), false},
		{"twitter", string(domain.NetworkTwitter), false},
		{"bitbucket", string(domain.NetworkBitbucket), false},

		// Matching is case-insensitive
		{"uppercase", "GITHUB", false},

		{"empty is required", "", true},
		{"unknown", "myspace", true},
		{"typo", "githb", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validResolveRequest()
			req.Network = tt.network
			err := v.ValidateStruct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ProfileFieldBounds(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		mutate  func(*ResolveRequest)
		wantErr bool
	}{
		{"valid", func(*ResolveRequest) {}, false},
		{"empty ids are left to the resolver", func(r *ResolveRequest) { r.ExternalID, r.Handle = "", "" }, false},
		{"handle at max", func(r *ResolveRequest) { r.Handle = strings.Repeat("a", 128) }, false},
		{"handle over max", func(r *ResolveRequest) { r.Handle = strings.Repeat("a", 129) }, true},
		{"display name over max", func(r *ResolveRequest) { r.DisplayName = strings.Repeat("a", 257) }, true},
		{"avatar url", func(r *ResolveRequest) { r.AvatarURL = "https://example.com/a.png" }, false},
		{"avatar not a url", func(r *ResolveRequest) { r.AvatarURL = "not a url" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validResolveRequest()
			tt.mutate(&req)
			err := v.ValidateStruct(req)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	err := GetValidator().ValidateStruct(ResolveRequest{Network: "orkut", AvatarURL: "nope"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Invalid network", fields["network"])
	assert.Equal(t, "Invalid URL", fields["avatarurl"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}

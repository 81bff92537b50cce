package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Network identifies an external identity provider
type Network string

// Supported networks
const (
	NetworkGitHub    Network = "github"
	NetworkTwitter   Network = "twitter"
	NetworkBitbucket Network = "bitbucket"
)

// Networks lists every supported network in display order
var Networks = []Network{NetworkGitHub, NetworkTwitter, NetworkBitbucket}

// ParseNetwork converts a user-supplied tag into a Network.
// Matching is case-insensitive; unknown tags return ErrInvalidNetwork.
func ParseNetwork(tag string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(tag)))
	if !n.Valid() {
		return "", ErrInvalidNetwork
	}
	return n, nil
}

// Valid reports whether n is a supported network
func (n Network) Valid() bool {
	for _, known := range Networks {
		if n == known {
			return true
		}
	}
	return false
}

func (n Network) String() string {
	return string(n)
}

// Profile is the normalized identity returned by an external network.
// ExternalID and Handle are required; the rest are advisory display fields.
type Profile struct {
	ExternalID  string `json:"external_id" validate:"required,max=128"`
	Handle      string `json:"handle" validate:"required,max=128"`
	DisplayName string `json:"display_name,omitempty" validate:"max=256"`
	AvatarURL   string `json:"avatar_url,omitempty" validate:"omitempty,url,max=2048"`
}

// Normalize trims whitespace from every field
func (p Profile) Normalize() Profile {
	return Profile{
		ExternalID:  strings.TrimSpace(p.ExternalID),
		Handle:      strings.TrimSpace(p.Handle),
		DisplayName: strings.TrimSpace(p.DisplayName),
		AvatarURL:   strings.TrimSpace(p.AvatarURL),
	}
}

// Validate returns ErrInvalidProfile when a required identity field is empty
func (p Profile) Validate() error {
	if p.ExternalID == "" {
		return WrapInvalidProfile("external_id is empty")
	}
	if p.Handle == "" {
		return WrapInvalidProfile("handle is empty")
	}
	return nil
}

// Account is the internal record for an external social identity
type Account struct {
	ID          string          `json:"id"`
	Network     Network         `json:"network"`
	ExternalID  string          `json:"external_id"`
	Handle      string          `json:"handle"`
	DisplayName string          `json:"display_name"`
	AvatarURL   string          `json:"avatar_url,omitempty"`
	IsClaimed   bool            `json:"is_claimed"`
	IsLocked    bool            `json:"is_locked"`
	Balance     decimal.Decimal `json:"balance"`
	ClaimedAt   *time.Time      `json:"claimed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Name returns the display name, falling back to the handle
func (a Account) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Handle
}

// ApplyProfile copies the advisory display fields from p.
// It reports whether anything changed.
func (a *Account) ApplyProfile(p Profile) bool {
	displayName := p.DisplayName
	if displayName == "" {
		displayName = p.Handle
	}

	changed := a.Handle != p.Handle || a.DisplayName != displayName || a.AvatarURL != p.AvatarURL
	a.Handle = p.Handle
	a.DisplayName = displayName
	a.AvatarURL = p.AvatarURL
	return changed
}

// NewAccount builds an unclaimed, unlocked account with a zero balance
func NewAccount(id string, network Network, p Profile) Account {
	acct := Account{
		ID:         id,
		Network:    network,
		ExternalID: p.ExternalID,
		Balance:    decimal.Zero,
	}
	acct.ApplyProfile(p)
	return acct
}

package security

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"tour-booking-api/config/common"
)

// IdentityUser is a user record held by the identity provider.
type IdentityUser struct {
	ID     string
	Email  string
	Name   string
	Avatar string
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
}

// IdentityProvider owns credentials and sessions.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, name string) (*IdentityUser, *Session, error)
	SignIn(ctx context.Context, email, password string) (*IdentityUser, *Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	// UpdateCredentials changes the caller's email and/or password; nil leaves a value as is.
	UpdateCredentials(ctx context.Context, accessToken string, email, password *string) error
	ListUsers(ctx context.Context) ([]IdentityUser, error)
}

// GoTrueProvider talks to Supabase Auth.
type GoTrueProvider struct {
	client         gotrue.Client
	serviceRoleKey string
}

func NewGoTrueProvider(config *common.Config) *GoTrueProvider {
	url, anonKey, serviceRoleKey := config.GetSupabaseConfig()
	return newGoTrueProvider(url, anonKey, serviceRoleKey)
}

func newGoTrueProvider(url, anonKey, serviceRoleKey string) *GoTrueProvider {
	client := gotrue.New("", anonKey).
		WithCustomGoTrueURL(strings.TrimRight(url, "/") + "/auth/v1")
	return &GoTrueProvider{client: client, serviceRoleKey: serviceRoleKey}
}

func (p *GoTrueProvider) SignUp(ctx context.Context, email, password, name string) (*IdentityUser, *Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	resp, err := p.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     map[string]interface{}{"name": name},
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "gotrue signup")
	}

	// With auto-confirm on, the user only comes back inside the session.
	user := resp.User
	if user.ID == uuid.Nil {
		user = resp.Session.User
	}
	var session *Session
	if resp.Session.AccessToken != "" {
		session = toSession(resp.Session)
	}
	return toIdentityUser(user), session, nil
}

func (p *GoTrueProvider) SignIn(ctx context.Context, email, password string) (*IdentityUser, *Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	resp, err := p.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, nil, errors.Wrap(err, "gotrue sign in")
	}
	return toIdentityUser(resp.User), toSession(resp.Session), nil
}

func (p *GoTrueProvider) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := p.client.RefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "gotrue refresh")
	}
	return toSession(resp.Session), nil
}

func (p *GoTrueProvider) SignOut(ctx context.Context, accessToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Wrap(p.client.WithToken(accessToken).Logout(), "gotrue logout")
}

func (p *GoTrueProvider) UpdateCredentials(ctx context.Context, accessToken string, email, password *string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if email == nil && password == nil {
		return nil
	}

	request := types.UpdateUserRequest{Password: password}
	if email != nil {
		request.Email = *email
	}
	_, err := p.client.WithToken(accessToken).UpdateUser(request)
	return errors.Wrap(err, "gotrue update user")
}

// ListUsers needs the service role key.
func (p *GoTrueProvider) ListUsers(ctx context.Context) ([]IdentityUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.serviceRoleKey == "" {
		return nil, errors.New("SUPABASE_SERVICE_ROLE_KEY is not set")
	}
	resp, err := p.client.WithToken(p.serviceRoleKey).AdminListUsers()
	if err != nil {
		return nil, errors.Wrap(err, "gotrue list users")
	}

	users := make([]IdentityUser, 0, len(resp.Users))
	for _, user := range resp.Users {
		users = append(users, *toIdentityUser(user))
	}
	return users, nil
}

func toIdentityUser(user types.User) *IdentityUser {
	return &IdentityUser{
		ID:     user.ID.String(),
		Email:  user.Email,
		Name:   metadataString(user.UserMetadata, "name"),
		Avatar: metadataString(user.UserMetadata, "avatar_url"),
	}
}

func toSession(session types.Session) *Session {
	return &Session{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    session.TokenType,
		ExpiresIn:    session.ExpiresIn,
		ExpiresAt:    session.ExpiresAt,
	}
}

func metadataString(metadata map[string]interface{}, key string) string {
	if metadata == nil {
		return ""
	}
	value, ok := metadata[key]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

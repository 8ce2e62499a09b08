package keycloak

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/Nerzal/gocloak/v13"

	"user-sync-service/app/config"
	"user-sync-service/app/domain"
)

// tokenSlack is subtracted from the token lifetime so a token is refreshed
// before it actually expires mid-call
const tokenSlack = 30 * time.Second

// Client wraps the Keycloak admin API. It implements port.KeycloakClient
// and caches the admin access token across calls.
type Client struct {
	gc            *gocloak.GoCloak
	realm         string
	adminUser     string
	adminPassword string
	logger        *slog.Logger

	tokenMu     sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a new Keycloak admin client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if _, err := url.ParseRequestURI(cfg.KeycloakBaseURL); err != nil {
		return nil, fmt.Errorf("invalid Keycloak base URL %q: %w", cfg.KeycloakBaseURL, err)
	}

	logger.Info("Keycloak client initialized",
		"base_url", cfg.KeycloakBaseURL,
		"realm", cfg.KeycloakRealm)

	return &Client{
		gc:            gocloak.NewClient(cfg.KeycloakBaseURL),
		realm:         cfg.KeycloakRealm,
		adminUser:     cfg.KeycloakAdminUser,
		adminPassword: cfg.KeycloakAdminPassword,
		logger:        logger.With("component", "keycloak_client"),
	}, nil
}

// token returns a valid admin access token, logging in again when the
// cached one is about to expire
func (c *Client) token(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	jwt, err := c.gc.LoginAdmin(ctx, c.adminUser, c.adminPassword, c.realm)
	if err != nil {
		return "", transformError(err, "admin login")
	}

	c.accessToken = jwt.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(jwt.ExpiresIn)*time.Second - tokenSlack)

	return c.accessToken, nil
}

// CreateAccount creates a Keycloak account and returns its ID
func (c *Client) CreateAccount(ctx context.Context, account domain.NewAccount) (string, error) {
	token, err := c.token(ctx)
	if err != nil {
		return "", err
	}

	user := gocloak.User{
		Username:  gocloak.StringP(account.Email),
		Email:     gocloak.StringP(account.Email),
		FirstName: gocloak.StringP(account.FirstName),
		LastName:  gocloak.StringP(account.LastName),
		Enabled:   gocloak.BoolP(account.Enabled),
	}

	if account.Password != "" {
		user.Credentials = &[]gocloak.CredentialRepresentation{
			{
				Type:      gocloak.StringP("password"),
				Value:     gocloak.StringP(account.Password),
				Temporary: gocloak.BoolP(false),
			},
		}
	}

	externalID, err := c.gc.CreateUser(ctx, token, c.realm, user)
	if err != nil {
		return "", transformError(err, "create account")
	}

	c.logger.Info("keycloak account created", "external_id", externalID)
	return externalID, nil
}

// GetAccount fetches a Keycloak account by ID
func (c *Client) GetAccount(ctx context.Context, externalID string) (*domain.IdentityAccount, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	user, err := c.gc.GetUserByID(ctx, token, c.realm, externalID)
	if err != nil {
		return nil, transformError(err, "get account")
	}

	return toIdentityAccount(user), nil
}

// UpdateAccount applies partial field changes to a Keycloak account
func (c *Client) UpdateAccount(ctx context.Context, externalID string, update domain.AccountUpdate) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	// Keycloak updates are full representations, so fetch first and
	// overlay the changed fields
	current, err := c.gc.GetUserByID(ctx, token, c.realm, externalID)
	if err != nil {
		return transformError(err, "get account for update")
	}

	if update.Email != nil {
		current.Email = update.Email
		current.Username = update.Email
	}
	if update.FirstName != nil {
		current.FirstName = update.FirstName
	}
	if update.LastName != nil {
		current.LastName = update.LastName
	}
	if update.Enabled != nil {
		current.Enabled = update.Enabled
	}

	if err := c.gc.UpdateUser(ctx, token, c.realm, *current); err != nil {
		return transformError(err, "update account")
	}

	c.logger.Info("keycloak account updated", "external_id", externalID)
	return nil
}

// DeleteAccount removes a Keycloak account
func (c *Client) DeleteAccount(ctx context.Context, externalID string) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	if err := c.gc.DeleteUser(ctx, token, c.realm, externalID); err != nil {
		return transformError(err, "delete account")
	}

	c.logger.Info("keycloak account deleted", "external_id", externalID)
	return nil
}

// AssignRole adds a realm role to an account
func (c *Client) AssignRole(ctx context.Context, externalID, role string) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	realmRole, err := c.gc.GetRealmRole(ctx, token, c.realm, role)
	if err != nil {
		return transformError(err, "get realm role")
	}

	if err := c.gc.AddRealmRoleToUser(ctx, token, c.realm, externalID, []gocloak.Role{*realmRole}); err != nil {
		return transformError(err, "assign role")
	}

	c.logger.Info("keycloak role assigned", "external_id", externalID, "role", role)
	return nil
}

// RemoveRole removes a realm role from an account
func (c *Client) RemoveRole(ctx context.Context, externalID, role string) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	realmRole, err := c.gc.GetRealmRole(ctx, token, c.realm, role)
	if err != nil {
		return transformError(err, "get realm role")
	}

	if err := c.gc.DeleteRealmRoleFromUser(ctx, token, c.realm, externalID, []gocloak.Role{*realmRole}); err != nil {
		return transformError(err, "remove role")
	}

	c.logger.Info("keycloak role removed", "external_id", externalID, "role", role)
	return nil
}

// HealthCheck verifies the Keycloak admin API is reachable
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := c.token(ctx); err != nil {
		return fmt.Errorf("keycloak health check failed: %w", err)
	}
	return nil
}

func toIdentityAccount(user *gocloak.User) *domain.IdentityAccount {
	account := &domain.IdentityAccount{}

	if user.ID != nil {
		account.ExternalID = *user.ID
	}
	if user.Email != nil {
		account.Email = *user.Email
	}
	if user.FirstName != nil {
		account.FirstName = *user.FirstName
	}
	if user.LastName != nil {
		account.LastName = *user.LastName
	}
	if user.Enabled != nil {
		account.Enabled = *user.Enabled
	}

	return account
}

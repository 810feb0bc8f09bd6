// Package msgraph is a minimal Microsoft Graph client for the OneDrive
// integration: OAuth code exchange plus drive listing.
package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	appconfig "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/config"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

// DriveItem is one entry of a drive listing. Folder entries carry a non-nil
// Folder facet and are skipped by the sync.
type DriveItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	WebURL string `json:"webUrl"`
	Size   int64  `json:"size"`
	File   *struct {
		MimeType string `json:"mimeType"`
	} `json:"file"`
	Folder *struct {
		ChildCount int `json:"childCount"`
	} `json:"folder"`
}

type driveChildrenResponse struct {
	Value    []DriveItem `json:"value"`
	NextLink string      `json:"@odata.nextLink"`
}

type meResponse struct {
	UserPrincipalName string `json:"userPrincipalName"`
	Mail              string `json:"mail"`
}

// Client is the Graph surface the OneDrive service depends on. Tests substitute
// a mock.
type Client interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource
	GetUserEmail(ctx context.Context, token *oauth2.Token) (string, error)
	ListRootChildren(ctx context.Context, token *oauth2.Token) ([]DriveItem, error)
}

// HTTPClient implements Client against the live Graph API.
type HTTPClient struct {
	oauthConfig *oauth2.Config
}

// NewClient builds a Graph client from application config, using the Microsoft
// identity platform endpoint for the configured tenant.
func NewClient(cfg *appconfig.Config) *HTTPClient {
	return &HTTPClient{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.OneDriveClientID,
			ClientSecret: cfg.OneDriveClientSecret,
			RedirectURL:  cfg.OneDriveRedirectURL,
			Scopes:       []string{"offline_access", "User.Read", "Files.Read.All"},
			Endpoint:     microsoft.AzureADEndpoint(cfg.OneDriveTenantID),
		},
	}
}

var _ Client = (*HTTPClient)(nil)

// AuthCodeURL returns the consent redirect URL for the given state.
func (c *HTTPClient) AuthCodeURL(state string) string {
	return c.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode swaps an authorization code for tokens.
func (c *HTTPClient) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// TokenSource returns a self-refreshing token source for a stored token.
func (c *HTTPClient) TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	return c.oauthConfig.TokenSource(ctx, token)
}

// GetUserEmail fetches the connected account's email via /me.
func (c *HTTPClient) GetUserEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	var me meResponse
	if err := c.getJSON(ctx, token, graphBaseURL+"/me", &me); err != nil {
		return "", err
	}
	if me.Mail != "" {
		return me.Mail, nil
	}
	return me.UserPrincipalName, nil
}

// ListRootChildren lists the drive root's children, following pagination links.
func (c *HTTPClient) ListRootChildren(ctx context.Context, token *oauth2.Token) ([]DriveItem, error) {
	var items []DriveItem
	url := graphBaseURL + "/me/drive/root/children"
	for url != "" {
		var page driveChildrenResponse
		if err := c.getJSON(ctx, token, url, &page); err != nil {
			return nil, err
		}
		items = append(items, page.Value...)
		url = page.NextLink
	}
	return items, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, token *oauth2.Token, url string, out any) error {
	httpClient := oauth2.NewClient(ctx, c.TokenSource(ctx, token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build graph request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("graph request to %s returned %d: %s", url, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode graph response: %w", err)
	}
	return nil
}

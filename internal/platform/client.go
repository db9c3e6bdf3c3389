// Package platform talks to a LinkedIn-style publishing API.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"content-workflow/internal/domain"
	"content-workflow/internal/logger"
	"content-workflow/internal/repository"
)

const (
	userInfoPath       = "/v2/userinfo"
	initializeUpload   = "/rest/images?action=initializeUpload"
	postsPath          = "/rest/posts"
	restliProtocol     = "2.0.0"
	idempotencyHeader  = "Idempotency-Key"
	postIDHeader       = "x-restli-id"
	maxErrorBodyLength = 512
)

// Config holds the platform client settings.
type Config struct {
	Provider          string
	APIBaseURL        string
	TokenURL          string
	ClientID          string
	ClientSecret      string
	PostURLBase       string
	APIVersion        string
	RequestsPerSecond float64
	HTTPTimeout       time.Duration
}

// Client implements the multi-step post protocol.
// Access tokens are read from the credential repository and cached until a refresh.
type Client struct {
	cfg        Config
	httpClient *http.Client
	creds      repository.CredentialRepository
	limiter    *rate.Limiter
	oauth      *oauth2.Config
	now        func() time.Time

	mu          sync.Mutex
	accessToken string
}

// NewClient creates a Client. A nil httpClient gets one with cfg.HTTPTimeout.
func NewClient(cfg Config, creds repository.CredentialRepository, httpClient *http.Client) (*Client, error) {
	if cfg.APIBaseURL == "" || cfg.TokenURL == "" {
		return nil, errors.New("platform api base url and token url are required")
	}
	if cfg.Provider == "" {
		return nil, errors.New("platform provider is required")
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2
	}
	if httpClient == nil {
		timeout := cfg.HTTPTimeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		creds:      creds,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		now: time.Now,
	}, nil
}

type userInfo struct {
	Sub string `json:"sub"`
}

// Identity returns the person URN posts are authored by.
func (c *Client) Identity(ctx context.Context) (string, error) {
	var info userInfo
	if _, err := c.doJSON(ctx, http.MethodGet, userInfoPath, nil, nil, &info); err != nil {
		return "", err
	}
	if info.Sub == "" {
		return "", errors.New("userinfo: missing subject")
	}
	return "urn:li:person:" + info.Sub, nil
}

type initializeUploadRequest struct {
	InitializeUploadRequest struct {
		Owner string `json:"owner"`
	} `json:"initializeUploadRequest"`
}

type initializeUploadResponse struct {
	Value struct {
		UploadURL string `json:"uploadUrl"`
		Image     string `json:"image"`
	} `json:"value"`
}

// RegisterMedia reserves an image upload slot owned by accountID.
func (c *Client) RegisterMedia(ctx context.Context, accountID string) (*domain.MediaSlot, error) {
	var req initializeUploadRequest
	req.InitializeUploadRequest.Owner = accountID

	var resp initializeUploadResponse
	if _, err := c.doJSON(ctx, http.MethodPost, initializeUpload, req, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Value.UploadURL == "" || resp.Value.Image == "" {
		return nil, errors.New("initialize upload: incomplete response")
	}
	return &domain.MediaSlot{UploadURL: resp.Value.UploadURL, Handle: resp.Value.Image}, nil
}

// UploadMedia sends image bytes to the slot's upload URL.
func (c *Client) UploadMedia(ctx context.Context, slot domain.MediaSlot, data []byte) error {
	resp, err := c.send(ctx, http.MethodPut, slot.UploadURL, bytes.NewReader(data), map[string]string{
		"Content-Type": "application/octet-stream",
	})
	if err != nil {
		return err
	}
	defer drain(resp)
	return nil
}

type postRequest struct {
	Author                    string       `json:"author"`
	Commentary                string       `json:"commentary"`
	Visibility                string       `json:"visibility"`
	Distribution              distribution `json:"distribution"`
	Content                   *postContent `json:"content,omitempty"`
	LifecycleState            string       `json:"lifecycleState"`
	IsReshareDisabledByAuthor bool         `json:"isReshareDisabledByAuthor"`
}

type distribution struct {
	FeedDistribution               string   `json:"feedDistribution"`
	TargetEntities                 []string `json:"targetEntities"`
	ThirdPartyDistributionChannels []string `json:"thirdPartyDistributionChannels"`
}

type mediaRef struct {
	ID string `json:"id"`
}

type postContent struct {
	Media      *mediaRef `json:"media,omitempty"`
	MultiImage *struct {
		Images []mediaRef `json:"images"`
	} `json:"multiImage,omitempty"`
}

// CreatePost publishes text with the uploaded media and returns the post URN.
func (c *Client) CreatePost(ctx context.Context, accountID, text string, mediaHandles []string, idempotencyKey string) (string, error) {
	body := postRequest{
		Author:     accountID,
		Commentary: text,
		Visibility: "PUBLIC",
		Distribution: distribution{
			FeedDistribution:               "MAIN_FEED",
			TargetEntities:                 []string{},
			ThirdPartyDistributionChannels: []string{},
		},
		Content:        buildContent(mediaHandles),
		LifecycleState: "PUBLISHED",
	}

	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{idempotencyHeader: idempotencyKey}
	}
	resp, err := c.doJSON(ctx, http.MethodPost, postsPath, body, headers, nil)
	if err != nil {
		return "", err
	}
	postID := resp.Header.Get(postIDHeader)
	if postID == "" {
		return "", errors.New("create post: missing post id")
	}
	return postID, nil
}

func buildContent(handles []string) *postContent {
	switch len(handles) {
	case 0:
		return nil
	case 1:
		return &postContent{Media: &mediaRef{ID: handles[0]}}
	default:
		content := &postContent{MultiImage: &struct {
			Images []mediaRef `json:"images"`
		}{}}
		for _, h := range handles {
			content.MultiImage.Images = append(content.MultiImage.Images, mediaRef{ID: h})
		}
		return content
	}
}

// PostURL builds the public feed URL of a post.
func (c *Client) PostURL(postID string) string {
	return c.cfg.PostURLBase + postID
}

// RefreshCredential exchanges the stored refresh token and persists the new tokens.
func (c *Client) RefreshCredential(ctx context.Context) error {
	cred, err := c.creds.GetCredential(ctx, c.cfg.Provider)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if cred == nil || cred.RefreshToken == "" {
		return fmt.Errorf("%w: no refresh token stored for %s", domain.ErrRefreshFailed, c.cfg.Provider)
	}

	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.TokenSource(tokenCtx, &oauth2.Token{RefreshToken: cred.RefreshToken}).Token()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRefreshFailed, err)
	}

	updated := domain.Credential{
		Provider:     c.cfg.Provider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		UpdatedAt:    c.now().UTC(),
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry.UTC()
		updated.ExpiresAt = &expiry
	}
	if err := c.creds.SaveCredential(ctx, &updated); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}

	c.mu.Lock()
	c.accessToken = token.AccessToken
	c.mu.Unlock()

	logger.InfoContext(ctx, "Platform credential refreshed", "provider", c.cfg.Provider)
	return nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	cached := c.accessToken
	c.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	cred, err := c.creds.GetCredential(ctx, c.cfg.Provider)
	if err != nil {
		return "", fmt.Errorf("load credential: %w", err)
	}
	if cred == nil || cred.AccessToken == "" {
		return "", fmt.Errorf("%w: no access token stored for %s", domain.ErrAuthExpired, c.cfg.Provider)
	}

	c.mu.Lock()
	c.accessToken = cred.AccessToken
	c.mu.Unlock()
	return cred.AccessToken, nil
}

// doJSON sends a JSON request to an API path and decodes the response into out when non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, in any, headers map[string]string, out any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	all := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		all[k] = v
	}

	resp, err := c.send(ctx, method, c.cfg.APIBaseURL+path, body, all)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return resp, nil
}

// send executes one rate-limited request with the bearer token.
// 401 maps to domain.ErrAuthExpired and drops the cached token.
func (c *Client) send(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Restli-Protocol-Version", restliProtocol)
	if c.cfg.APIVersion != "" {
		req.Header.Set("LinkedIn-Version", c.cfg.APIVersion)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)
		c.mu.Lock()
		c.accessToken = ""
		c.mu.Unlock()
		return nil, domain.ErrAuthExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		drain(resp)
		return nil, fmt.Errorf("%s %s: status %d: %s", method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return resp, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

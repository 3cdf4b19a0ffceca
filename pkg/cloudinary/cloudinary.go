// Package cloudinary provides a minimal HTTP client for Cloudinary's
// unsigned upload API.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/bytsmartz/leads_backend/config"
)

var (
	// ErrNotConfigured is returned when no cloud name or upload preset is
	// set. The caller should surface a configuration error instead of
	// attempting the upload.
	ErrNotConfigured = errors.New("cloudinary: cloud name and upload preset are required")

	ErrUploadRejected = errors.New("cloudinary: upload rejected by provider")
)

// Client is a lightweight Cloudinary upload client. It only performs
// unsigned uploads against a preconfigured preset.
type Client struct {
	cloudName    string
	uploadPreset string
	baseURL      string
	httpClient   *http.Client
}

// UploadResult is the subset of the provider response the service cares
// about. SecureURL is the durable HTTPS URL of the stored asset.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Bytes     int64  `json:"bytes"`
	Format    string `json:"format"`
}

// New creates a Client from config. A client with missing credentials is
// still returned; Upload fails fast with ErrNotConfigured.
func New(cfg config.CloudinaryConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.cloudinary.com/v1_1"
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// IsConfigured reports whether the client has credentials to upload with.
func (c *Client) IsConfigured() bool {
	return c.cloudName != "" && c.uploadPreset != ""
}

// Upload sends one file as a multipart form ("file" + "upload_preset") to
// the auto-upload endpoint and returns the provider's result. It never
// returns a partial result: any non-2xx response or missing secure_url is
// an error.
func (c *Client) Upload(ctx context.Context, filename string, body io.Reader) (*UploadResult, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: build form: %w", err)
	}
	if _, err := io.Copy(part, body); err != nil {
		return nil, fmt.Errorf("cloudinary: read file: %w", err)
	}
	if err := mw.WriteField("upload_preset", c.uploadPreset); err != nil {
		return nil, fmt.Errorf("cloudinary: build form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("cloudinary: build form: %w", err)
	}

	url := fmt.Sprintf("%s/%s/auto/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: do request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w (status=%d)", ErrUploadRejected, res.StatusCode)
	}

	var result UploadResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("cloudinary: decode response: %w", err)
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("%w (no secure_url in response)", ErrUploadRejected)
	}

	return &result, nil
}

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is the header carrying the id of every outgoing request.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewAPIClient creates an HTTPClient bound to baseURL that
//   - applies timeout to every request (zero keeps resty's default);
//   - sends JSON by default;
//   - stamps each request with an X-Request-ID header taken from the request
//     context (see WithRequestID) or freshly generated by ids.
//
// Example usage:
//
//	client := utils.NewAPIClient("http://localhost:8000", 15*time.Second, utils.NewUUIDGenerator())
//	resp, err := client.R().SetContext(ctx).Get("/auth/me")
func NewAPIClient(baseURL string, timeout time.Duration, ids *UUIDGenerator) *HTTPClient {
	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		requestID, ok := GetRequestIDFromContext(req.Context())
		if !ok {
			requestID = ids.Generate()
		}
		req.SetHeader(RequestIDHeader, requestID)
		return nil
	})

	return client
}

package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultAPIVersion = "v52.0"

	dataPathFormat      = "/services/data/%s"
	describePathFormat  = "/sobjects/%s/describe"
	sobjectPathFormat   = "/sobjects/%s/"
	globalDescribePath  = "/sobjects"
	limitsPath          = "/limits"
	queryAllPath        = "/queryAll"
	jsonContentType     = "application/json"
	contentTypeHeader   = "Content-Type"
	acceptHeader        = "Accept"
	userAgentHeader     = "User-Agent"
	defaultUserAgent    = "target-salesforce"
	maxErrorBodyLogSize = 1024

	CreateRequestErrorFormat     = "error creating %s request for %s"
	RequestErrorFormat           = "error performing %s %s"
	ReadResponseErrorFormat      = "error reading response from %s"
	UnmarshalResponseErrorFormat = "error unmarshaling response from %s"
	UnexpectedStatusErrorFormat  = "%s %s returned with unexpected status %d: %s"
	RateLimiterErrorMessage      = "rate limiter wait failed"
	MarshalPayloadErrorMessage   = "error marshaling request payload"
)

//go:generate counterfeiter . httpClient
type httpClient interface {
	Do(request *http.Request) (*http.Response, error)
}

type Options struct {
	InstanceURL        string
	APIVersion         string
	RequestsPerSecond  float64
	QuotaPercentTotal  float64
	QuotaPercentPerRun float64
}

// Response is a fully read REST response. Non-2xx statuses are not errors at this level.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client talks to the Salesforce REST API. It is safe for concurrent use, but callers are
// expected to drive it from a single goroutine.
type Client struct {
	httpClient  httpClient
	instanceURL string
	apiVersion  string
	limiter     *rate.Limiter
	logger      *zap.Logger

	mu        sync.Mutex
	quota     *quotaTracker
	describes map[string]ObjectDescriptor
}

func NewClient(httpClient httpClient, opts Options, logger *zap.Logger) *Client {
	apiVersion := opts.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient:  httpClient,
		instanceURL: strings.TrimSuffix(opts.InstanceURL, "/"),
		apiVersion:  apiVersion,
		limiter:     rate.NewLimiter(limit, 1),
		logger:      logger,
		quota:       newQuotaTracker(opts.QuotaPercentTotal, opts.QuotaPercentPerRun),
		describes:   make(map[string]ObjectDescriptor),
	}
}

// RequestsAttempted is the number of REST requests made toward the org's quota.
func (c *Client) RequestsAttempted() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quota.attempted
}

func (c *Client) DescribeGlobal(ctx context.Context) ([]string, error) {
	resp, err := c.get(ctx, c.dataURL(globalDescribePath))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, unexpectedStatus(http.MethodGet, globalDescribePath, resp)
	}

	var gd globalDescribe
	if err := json.Unmarshal(resp.Body, &gd); err != nil {
		return nil, errors.Wrapf(err, UnmarshalResponseErrorFormat, globalDescribePath)
	}

	names := make([]string, 0, len(gd.SObjects))
	for _, o := range gd.SObjects {
		names = append(names, o.Name)
	}
	return names, nil
}

// Describe fetches an object's field catalog, caching it by name for the client's lifetime.
func (c *Client) Describe(ctx context.Context, name string) (ObjectDescriptor, error) {
	c.mu.Lock()
	cached, ok := c.describes[name]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	path := fmt.Sprintf(describePathFormat, url.PathEscape(name))
	resp, err := c.get(ctx, c.dataURL(path))
	if err != nil {
		return ObjectDescriptor{}, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return ObjectDescriptor{}, &ObjectNotFoundError{Name: name}
	}
	if !resp.IsSuccess() {
		return ObjectDescriptor{}, unexpectedStatus(http.MethodGet, path, resp)
	}

	var od ObjectDescriptor
	if err := json.Unmarshal(resp.Body, &od); err != nil {
		return ObjectDescriptor{}, errors.Wrapf(err, UnmarshalResponseErrorFormat, path)
	}

	c.mu.Lock()
	c.describes[name] = od
	c.mu.Unlock()
	return od, nil
}

// HasBulkPermission probes the limits endpoint; an API_DISABLED_FOR_ORG error means the
// org cannot use the Bulk API.
func (c *Client) HasBulkPermission(ctx context.Context) (bool, error) {
	resp, err := c.get(ctx, c.dataURL(limitsPath))
	if err != nil {
		return false, err
	}
	if resp.IsSuccess() {
		return true, nil
	}

	for _, apiErr := range ParseAPIErrors(resp.Body) {
		if apiErr.ErrorCode == APIDisabledForOrgErrorCode {
			return false, nil
		}
	}
	return false, unexpectedStatus(http.MethodGet, limitsPath, resp)
}

// Create posts a new record to the object's collection endpoint.
func (c *Client) Create(ctx context.Context, objectName string, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, MarshalPayloadErrorMessage)
	}
	return c.send(ctx, http.MethodPost, c.dataURL(fmt.Sprintf(sobjectPathFormat, url.PathEscape(objectName))), body)
}

// Update patches the record at resourcePath, the url returned in a query row's attributes.
func (c *Client) Update(ctx context.Context, resourcePath string, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, MarshalPayloadErrorMessage)
	}
	return c.send(ctx, http.MethodPatch, c.instanceURL+resourcePath, body)
}

func (c *Client) dataURL(path string) string {
	return c.instanceURL + fmt.Sprintf(dataPathFormat, c.apiVersion) + path
}

func (c *Client) get(ctx context.Context, target string) (*Response, error) {
	return c.send(ctx, http.MethodGet, target, nil)
}

func (c *Client) send(ctx context.Context, method, target string, body []byte) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, RateLimiterErrorMessage)
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, errors.Wrapf(err, CreateRequestErrorFormat, method, target)
	}
	req.Header.Set(acceptHeader, jsonContentType)
	req.Header.Set(userAgentHeader, defaultUserAgent)
	if body != nil {
		req.Header.Set(contentTypeHeader, jsonContentType)
	}

	c.mu.Lock()
	c.quota.attempted++
	c.mu.Unlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, RequestErrorFormat, method, target)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, ReadResponseErrorFormat, target)
	}

	c.mu.Lock()
	err = c.quota.check(resp.Header.Get(LimitInfoHeader))
	c.mu.Unlock()
	if err != nil {
		c.logger.Warn("request completed before the quota check failed",
			zap.String("method", method),
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", truncate(respBody)),
		)
		return nil, err
	}

	c.logger.Debug("salesforce request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
	)

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
}

func truncate(body []byte) []byte {
	if len(body) > maxErrorBodyLogSize {
		return body[:maxErrorBodyLogSize]
	}
	return body
}

func unexpectedStatus(method, path string, resp *Response) error {
	return errors.Errorf(UnexpectedStatusErrorFormat, method, path, resp.StatusCode, string(truncate(resp.Body)))
}

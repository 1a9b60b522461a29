package bria

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"adsnap/internal/domain"
	"adsnap/internal/infra"
)

const (
	DefaultBaseURL = "https://engine.prod.bria-api.com/v1"

	// HeaderAPIToken carries the credential on every vendor call.
	HeaderAPIToken = "api_token"

	defaultTimeout = 120 * time.Second
	maxErrorBody   = 512
)

// Observer receives one sample per vendor call.
type Observer interface {
	ObserveVendorCall(endpoint, outcome string, elapsed time.Duration)
}

// Options configures the Bria REST client.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	Observer       Observer
	RequestTimeout time.Duration
}

// Client performs single, unretried HTTP calls against the Bria API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
	observer   Observer
}

// File is a binary attachment sent as one multipart part.
type File struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Request describes one vendor call. When Files is empty the fields are sent
// as a JSON object, otherwise everything goes out as multipart/form-data.
type Request struct {
	Operation string
	Endpoint  string
	APIKey    string
	Fields    map[string]any
	Files     []File
}

// NewClient constructs a client with defaults for anything left unset.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		observer:   opts.Observer,
	}
}

// BaseURL returns the configured vendor root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call sends req once and returns the raw JSON body of a 2xx answer.
func (c *Client) Call(ctx context.Context, req Request) (json.RawMessage, error) {
	if strings.TrimSpace(req.APIKey) == "" {
		return nil, domain.ErrMissingCredential
	}
	started := time.Now()
	raw, err := c.do(ctx, req)
	outcome := "success"
	if err != nil {
		outcome = "error"
		var apiErr *domain.ExternalAPIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 0 {
			outcome = "transport_error"
		}
		c.logger.Warn().
			Err(err).
			Str("operation", req.Operation).
			Str("endpoint", req.Endpoint).
			Msg("bria: call failed")
	}
	if c.observer != nil {
		c.observer.ObserveVendorCall(req.Endpoint, outcome, time.Since(started))
	}
	return raw, err
}

func (c *Client) do(ctx context.Context, req Request) (json.RawMessage, error) {
	fail := func(status int, msg string, cause error) error {
		return &domain.ExternalAPIError{
			Operation:  req.Operation,
			Endpoint:   req.Endpoint,
			StatusCode: status,
			Message:    msg,
			Err:        cause,
		}
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, fail(0, fmt.Sprintf("encode request: %v", err), err)
	}
	endpoint := c.baseURL + "/" + strings.TrimLeft(req.Endpoint, "/")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fail(0, fmt.Sprintf("build request: %v", err), err)
	}
	requestID := infra.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderAPIToken, req.APIKey)
	httpReq.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fail(0, err.Error(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(resp.StatusCode, fmt.Sprintf("read response: %v", err), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fail(resp.StatusCode, upstreamMessage(raw, resp.Status), nil)
	}
	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		return nil, fail(resp.StatusCode, "invalid JSON in response", nil)
	}
	c.logger.Debug().
		Str("operation", req.Operation).
		Str("endpoint", req.Endpoint).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("bria: call succeeded")
	return json.RawMessage(raw), nil
}

func encodeBody(req Request) (io.Reader, string, error) {
	if len(req.Files) == 0 {
		fields := req.Fields
		if fields == nil {
			fields = map[string]any{}
		}
		payload, err := json.Marshal(fields)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(payload), "application/json", nil
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range req.Files {
		if err := writeFile(writer, f); err != nil {
			writer.Close()
			return nil, "", err
		}
	}
	keys := make([]string, 0, len(req.Fields))
	for k := range req.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := req.Fields[k]
		if v == nil {
			continue
		}
		value, err := formValue(v)
		if err != nil {
			writer.Close()
			return nil, "", fmt.Errorf("field %s: %w", k, err)
		}
		if err := writer.WriteField(k, value); err != nil {
			writer.Close()
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

func writeFile(writer *multipart.Writer, f File) error {
	field := strings.TrimSpace(f.Field)
	if field == "" {
		field = "file"
	}
	filename := strings.TrimSpace(f.Filename)
	if filename == "" {
		filename = "image.png"
	}
	contentType := strings.TrimSpace(f.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(f.Data)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(f.Data)
	return err
}

// formValue renders a field the way the vendor parses form values: bools as
// true/false, numbers in decimal, lists and objects as JSON.
func formValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

type errorBody struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
	Error   json.RawMessage `json:"error"`
}

func upstreamMessage(raw []byte, status string) string {
	var decoded errorBody
	if err := json.Unmarshal(raw, &decoded); err == nil {
		if msg := strings.TrimSpace(decoded.Message); msg != "" {
			return msg
		}
		if msg := rawText(decoded.Error); msg != "" {
			return msg
		}
		if msg := rawText(decoded.Detail); msg != "" {
			return msg
		}
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return status
	}
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	return text
}

// rawText reads either a JSON string or an object carrying a message field.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return strings.TrimSpace(obj.Message)
	}
	return strings.TrimSpace(string(raw))
}

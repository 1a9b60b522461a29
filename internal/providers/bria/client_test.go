package bria

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"adsnap/internal/domain"
)

func TestCallSendsJSONWithoutFiles(t *testing.T) {
	transport := &captureTransport{responses: map[string]responseStub{}}
	transport.setJSONResponse("/v1/prompt_enhancer", map[string]any{"prompt variations": "a red cube, studio light"})
	client := NewClient(Options{BaseURL: "https://bria.test/v1/", HTTPClient: &http.Client{Transport: transport}})

	raw, err := client.Call(context.Background(), Request{
		Operation: "Prompt enhancement",
		Endpoint:  "/prompt_enhancer",
		APIKey:    "key-123",
		Fields:    map[string]any{"prompt": "red cube"},
	})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if !strings.Contains(string(raw), "studio light") {
		t.Fatalf("unexpected body: %s", raw)
	}
	if got := transport.lastHeader.Get(HeaderAPIToken); got != "key-123" {
		t.Fatalf("api_token = %q, want key-123", got)
	}
	if got := transport.lastHeader.Get("Content-Type"); got != "application/json" {
		t.Fatalf("content-type = %q, want application/json", got)
	}
	if transport.lastHeader.Get("X-Request-ID") == "" {
		t.Fatalf("expected outbound request id")
	}
	var payload map[string]any
	if err := json.Unmarshal(transport.lastBody, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["prompt"] != "red cube" {
		t.Fatalf("prompt = %v, want red cube", payload["prompt"])
	}
}

func TestCallSendsMultipartWithFiles(t *testing.T) {
	transport := &captureTransport{responses: map[string]responseStub{}}
	transport.setJSONResponse("/v1/background/remove", map[string]any{"result_url": "https://x/y.png"})
	client := NewClient(Options{BaseURL: "https://bria.test/v1", HTTPClient: &http.Client{Transport: transport}})

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0}
	raw, err := client.Call(context.Background(), Request{
		Operation: "Background removal",
		Endpoint:  "/background/remove",
		APIKey:    "key",
		Fields: map[string]any{
			"content_moderation": true,
			"shot_size":          []int{1000, 1000},
			"num_results":        4,
			"skip":               nil,
		},
		Files: []File{{Field: "file", Data: png}},
	})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if string(raw) != `{"result_url":"https://x/y.png"}` {
		t.Fatalf("body = %s", raw)
	}

	mediaType, params, err := mime.ParseMediaType(transport.lastHeader.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("content-type = %q (%v)", transport.lastHeader.Get("Content-Type"), err)
	}
	form, err := multipart.NewReader(bytes.NewReader(transport.lastBody), params["boundary"]).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	if got := form.Value["content_moderation"]; len(got) != 1 || got[0] != "true" {
		t.Fatalf("content_moderation = %v", got)
	}
	if got := form.Value["shot_size"]; len(got) != 1 || got[0] != "[1000,1000]" {
		t.Fatalf("shot_size = %v", got)
	}
	if got := form.Value["num_results"]; len(got) != 1 || got[0] != "4" {
		t.Fatalf("num_results = %v", got)
	}
	if _, ok := form.Value["skip"]; ok {
		t.Fatalf("nil fields must be omitted")
	}
	files := form.File["file"]
	if len(files) != 1 {
		t.Fatalf("file parts = %d, want 1", len(files))
	}
	if files[0].Filename != "image.png" {
		t.Fatalf("filename = %q", files[0].Filename)
	}
	if ct := files[0].Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("file content-type = %q, want image/png", ct)
	}
}

func TestCallMapsVendorErrorStatus(t *testing.T) {
	transport := &captureTransport{responses: map[string]responseStub{}}
	transport.responses["/v1/product/packshot"] = responseStub{
		status: http.StatusUnprocessableEntity,
		body:   []byte(`{"error":{"code":422,"message":"image too small"}}`),
	}
	client := NewClient(Options{BaseURL: "https://bria.test/v1", HTTPClient: &http.Client{Transport: transport}})

	_, err := client.Call(context.Background(), Request{
		Operation: "Packshot creation",
		Endpoint:  "/product/packshot",
		APIKey:    "key",
		Files:     []File{{Data: []byte("img")}},
	})
	var apiErr *domain.ExternalAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected ExternalAPIError, got %T %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "image too small") || !strings.Contains(err.Error(), "Packshot creation") {
		t.Fatalf("error message = %q", err.Error())
	}
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("expected ErrProviderFailure in chain")
	}
}

func TestCallWrapsTransportFailure(t *testing.T) {
	observer := &recordingObserver{}
	client := NewClient(Options{
		HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset by peer")
		})},
		Observer: observer,
	})

	_, err := client.Call(context.Background(), Request{Operation: "Image generation", Endpoint: "/text-to-image/hd/2.3", APIKey: "key"})
	var apiErr *domain.ExternalAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected ExternalAPIError, got %v", err)
	}
	if apiErr.StatusCode != 0 {
		t.Fatalf("transport failures carry no status, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "connection reset by peer") {
		t.Fatalf("error should carry the original text: %q", err.Error())
	}
	if len(observer.outcomes) != 1 || observer.outcomes[0] != "transport_error" {
		t.Fatalf("observer outcomes = %v", observer.outcomes)
	}
}

func TestCallRejectsNonJSONSuccess(t *testing.T) {
	transport := &captureTransport{responses: map[string]responseStub{}}
	transport.responses["/v1/erase_foreground"] = responseStub{status: http.StatusOK, body: []byte("<html>ok</html>")}
	client := NewClient(Options{BaseURL: "https://bria.test/v1", HTTPClient: &http.Client{Transport: transport}})

	_, err := client.Call(context.Background(), Request{Operation: "Foreground erase", Endpoint: "/erase_foreground", APIKey: "key", Files: []File{{Data: []byte("x")}}})
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Fatalf("expected invalid JSON error, got %v", err)
	}
}

func TestCallWithoutCredentialMakesNoRequest(t *testing.T) {
	calls := 0
	client := NewClient(Options{HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("unexpected")
	})}})

	_, err := client.Call(context.Background(), Request{Operation: "x", Endpoint: "/x", APIKey: "  "})
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
	if calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}

func TestUpstreamMessageFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "message field", raw: `{"message":"quota exceeded"}`, want: "quota exceeded"},
		{name: "error string", raw: `{"error":"bad token"}`, want: "bad token"},
		{name: "detail string", raw: `{"detail":"not found"}`, want: "not found"},
		{name: "plain text", raw: "  upstream down  ", want: "upstream down"},
		{name: "empty body", raw: "", want: "503 Service Unavailable"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := upstreamMessage([]byte(tc.raw), "503 Service Unavailable"); got != tc.want {
				t.Fatalf("upstreamMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

type recordingObserver struct {
	outcomes []string
}

func (o *recordingObserver) ObserveVendorCall(endpoint, outcome string, elapsed time.Duration) {
	o.outcomes = append(o.outcomes, outcome)
}

type captureTransport struct {
	responses  map[string]responseStub
	lastBody   []byte
	lastHeader http.Header
}

type responseStub struct {
	status int
	header http.Header
	body   []byte
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body.Close()
		c.lastBody = body
	}
	c.lastHeader = req.Header.Clone()
	if stub, ok := c.responses[req.URL.Path]; ok {
		return stub.toResponse(), nil
	}
	return &http.Response{
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
		Body:       io.NopCloser(strings.NewReader("not found")),
	}, nil
}

func (c *captureTransport) setJSONResponse(path string, payload any) {
	body, _ := json.Marshal(payload)
	c.responses[path] = responseStub{
		status: http.StatusOK,
		header: http.Header{"Content-Type": []string{"application/json"}},
		body:   body,
	}
}

func (s responseStub) toResponse() *http.Response {
	header := http.Header{}
	for k, values := range s.header {
		cloned := make([]string, len(values))
		copy(cloned, values)
		header[k] = cloned
	}
	return &http.Response{
		StatusCode: s.status,
		Status:     http.StatusText(s.status),
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(s.body)),
	}
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"adsnap/internal/domain"
	"adsnap/internal/providers/bria"
	"adsnap/internal/services"
)

type recordingCaller struct {
	opts     Options
	requests []bria.Request
	response json.RawMessage
}

func (c *recordingCaller) Call(_ context.Context, req bria.Request) (json.RawMessage, error) {
	c.requests = append(c.requests, req)
	return c.response, nil
}

func run(t *testing.T, caller *recordingCaller, args ...string) (string, error) {
	t.Helper()
	if caller.response == nil {
		caller.response = json.RawMessage(`{"result_url":"https://x/y.png"}`)
	}
	root := NewRootCommand(func(opts Options) services.Caller {
		caller.opts = opts
		return caller
	})
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mug.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, 0o600))
	return path
}

func TestPackshotUsesEnvironmentKeyAndDefaults(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "env-key")
	t.Setenv("BRIA_BASE_URL", "https://bria.test/v1")
	caller := &recordingCaller{}

	out, err := run(t, caller, "packshot", "--image", writeImage(t))

	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","data":{"result_url":"https://x/y.png"},"message":"Packshot created successfully"}`, out)
	require.Len(t, caller.requests, 1)
	req := caller.requests[0]
	assert.Equal(t, "env-key", req.APIKey)
	assert.Equal(t, "/product/packshot", req.Endpoint)
	assert.Equal(t, "#FFFFFF", req.Fields["background_color"])
	require.Len(t, req.Files, 1)
	assert.Equal(t, "mug.png", req.Files[0].Filename)
	assert.Equal(t, "https://bria.test/v1", caller.opts.BaseURL)
	assert.Positive(t, caller.opts.Timeout)
}

func TestAPIKeyFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "env-key")
	caller := &recordingCaller{}

	_, err := run(t, caller, "generate", "--prompt", "a ceramic mug", "--api-key", "flag-key", "-n", "2")

	require.NoError(t, err)
	require.Len(t, caller.requests, 1)
	assert.Equal(t, "flag-key", caller.requests[0].APIKey)
	assert.Equal(t, 2, caller.requests[0].Fields["num_results"])
}

func TestMissingCredentialMakesNoCall(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "")
	caller := &recordingCaller{}

	_, err := run(t, caller, "remove-bg", "--image", writeImage(t))

	require.ErrorIs(t, err, domain.ErrMissingCredential)
	assert.Empty(t, caller.requests)
}

func TestMissingImageIsValidationError(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "env-key")
	caller := &recordingCaller{}

	_, err := run(t, caller, "shadow", "--type", "drop")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "image", verr.Field)
	assert.Empty(t, caller.requests)
}

func TestOutOfRangeFlagRejected(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "env-key")
	caller := &recordingCaller{}

	_, err := run(t, caller, "shadow", "--image", writeImage(t), "--intensity", "101")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, caller.requests)
}

func TestYAMLOutput(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "env-key")
	caller := &recordingCaller{response: json.RawMessage(`{"result":[{"urls":["https://x/1.png"]}]}`)}

	out, err := run(t, caller, "lifestyle-text", "--image", writeImage(t), "--scene", "sunlit kitchen counter", "-F", "yaml")

	require.NoError(t, err)
	var decoded struct {
		Status  string         `yaml:"status"`
		Data    map[string]any `yaml:"data"`
		Message string         `yaml:"message"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "success", decoded.Status)
	assert.Equal(t, "Lifestyle shot created successfully", decoded.Message)
	assert.Contains(t, decoded.Data, "result")
}

func TestEnhanceOutputCarriesPrompts(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "env-key")
	caller := &recordingCaller{response: json.RawMessage(`{"prompt variations":"a glazed ceramic mug, soft daylight"}`)}

	out, err := run(t, caller, "enhance", "--prompt", "mug")

	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "mug", decoded["original"])
	assert.Equal(t, "a glazed ceramic mug, soft daylight", decoded["enhanced"])
}

func TestOutFlagWritesFile(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "env-key")
	caller := &recordingCaller{}
	dest := filepath.Join(t.TempDir(), "results", "erase.json")

	out, err := run(t, caller, "erase", "--image", writeImage(t), "-o", dest)

	require.NoError(t, err)
	assert.Empty(t, out)
	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(written), "Elements erased successfully")
}

func TestUnsupportedFormat(t *testing.T) {
	t.Setenv("BRIA_API_KEY", "env-key")
	caller := &recordingCaller{}

	_, err := run(t, caller, "generate", "--prompt", "mug", "--format", "xml")

	require.Error(t, err)
	assert.Empty(t, caller.requests)
}

// Package cli implements studioctl, a terminal front end that drives the
// capability adapters directly against the Bria API.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"adsnap/internal/infra"
	"adsnap/internal/services"
)

// Options holds the flags shared by every subcommand.
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Format  string
	Out     string
}

// CallerFactory builds the vendor caller once flags and environment are resolved.
type CallerFactory func(opts Options) services.Caller

type runner struct {
	opts      *Options
	newCaller CallerFactory
}

// NewRootCommand assembles the studioctl command tree.
func NewRootCommand(newCaller CallerFactory) *cobra.Command {
	opts := &Options{}
	r := &runner{opts: opts, newCaller: newCaller}

	root := &cobra.Command{
		Use:   "studioctl",
		Short: "Generate and edit product imagery from the terminal",
		Long: `studioctl calls the same image adapters as the AdSnap Studio API.

The API key comes from --api-key, falling back to BRIA_API_KEY.

Examples:
  studioctl generate --prompt "a ceramic mug on a wooden table"
  studioctl packshot --image mug.png --background-color "#F0F0F0" -F yaml
  studioctl shadow --image mug.png --type drop --intensity 80 -o shadow.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.APIKey, "api-key", "", "Bria API key (default $BRIA_API_KEY)")
	pf.StringVar(&opts.BaseURL, "base-url", "", "Bria API base URL (default $BRIA_BASE_URL)")
	pf.DurationVar(&opts.Timeout, "timeout", 0, "vendor request timeout (default $BRIA_REQUEST_TIMEOUT_SECONDS)")
	pf.StringVarP(&opts.Format, "format", "F", "json", "output format: json or yaml")
	pf.StringVarP(&opts.Out, "out", "o", "", "write the result to a file instead of stdout")

	root.AddCommand(
		r.generateCmd(),
		r.enhanceCmd(),
		r.lifestyleTextCmd(),
		r.lifestyleImageCmd(),
		r.fillCmd(),
		r.eraseCmd(),
		r.shadowCmd(),
		r.packshotCmd(),
		r.removeBackgroundCmd(),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context, newCaller CallerFactory) error {
	return NewRootCommand(newCaller).ExecuteContext(ctx)
}

// service resolves flags against the environment and returns the adapters
// plus the credential to use.
func (r *runner) service() (*services.Service, string, error) {
	switch strings.ToLower(r.opts.Format) {
	case "json", "yaml", "yml":
	default:
		return nil, "", fmt.Errorf("unsupported format %q (want json or yaml)", r.opts.Format)
	}
	cfg, err := infra.LoadConfig()
	if err != nil {
		return nil, "", err
	}
	resolved := *r.opts
	if strings.TrimSpace(resolved.APIKey) == "" {
		resolved.APIKey = cfg.BriaAPIKey
	}
	if strings.TrimSpace(resolved.BaseURL) == "" {
		resolved.BaseURL = cfg.BriaBaseURL
	}
	if resolved.Timeout <= 0 {
		resolved.Timeout = cfg.BriaTimeout
	}
	return services.NewService(r.newCaller(resolved)), strings.TrimSpace(resolved.APIKey), nil
}

type output struct {
	Status   string `json:"status" yaml:"status"`
	Data     any    `json:"data" yaml:"data"`
	Original string `json:"original,omitempty" yaml:"original,omitempty"`
	Enhanced string `json:"enhanced,omitempty" yaml:"enhanced,omitempty"`
	Message  string `json:"message" yaml:"message"`
}

func (r *runner) emit(cmd *cobra.Command, raw json.RawMessage, message string) error {
	return r.write(cmd, output{Status: "success", Message: message}, raw)
}

func (r *runner) write(cmd *cobra.Command, out output, raw json.RawMessage) error {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out.Data); err != nil {
			return fmt.Errorf("decode vendor response: %w", err)
		}
	}

	var (
		encoded []byte
		err     error
	)
	switch strings.ToLower(r.opts.Format) {
	case "yaml", "yml":
		encoded, err = yaml.Marshal(out)
	default:
		encoded, err = json.MarshalIndent(out, "", "  ")
		encoded = append(encoded, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	if r.opts.Out == "" {
		_, err = cmd.OutOrStdout().Write(encoded)
		return err
	}
	if err := saveToFile(r.opts.Out, encoded); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s -> %s\n", message(out), r.opts.Out)
	return nil
}

func message(out output) string {
	if out.Message != "" {
		return out.Message
	}
	return out.Status
}

// readImage loads an upload from disk. An empty path yields an empty image,
// which the adapters reject before any call.
func readImage(path string) (services.Image, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return services.Image{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return services.Image{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return services.Image{}, fmt.Errorf("read image %s: %w", path, err)
	}
	return services.Image{Data: data, Filename: filepath.Base(path)}, nil
}

func saveToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"adsnap/internal/domain"
	"adsnap/internal/services"
)

const maxMultipartMemory = 32 << 20

// binder reads form fields and remembers the first failure so handlers can
// bind everything and check once.
type binder struct {
	r   *http.Request
	err error
}

// bind parses a multipart or urlencoded body, capped at the upload limit.
func (a *App) bind(w http.ResponseWriter, r *http.Request) *binder {
	b := &binder{r: r}
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUploadBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxMultipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			b.err = err
		} else {
			b.err = domain.Invalid("body", "cannot parse form: %v", err)
		}
	}
	return b
}

func (b *binder) Err() error {
	return b.err
}

func (b *binder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *binder) text(name string) string {
	return strings.TrimSpace(b.r.FormValue(name))
}

func (b *binder) required(name string) string {
	v := b.text(name)
	if v == "" {
		b.fail(domain.Invalid(name, "field required"))
	}
	return v
}

// integer parses an optional integer and enforces the inclusive [lo, hi] range.
func (b *binder) integer(name string, def, lo, hi int) int {
	raw := b.text(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		b.fail(domain.Invalid(name, "must be an integer, got %q", raw))
		return def
	}
	if v < lo || v > hi {
		b.fail(domain.Invalid(name, "must be between %d and %d, got %d", lo, hi, v))
	}
	return v
}

func (b *binder) boolean(name string, def bool) bool {
	raw := strings.ToLower(b.text(name))
	switch raw {
	case "":
		return def
	case "true", "1", "yes", "on", "y", "t":
		return true
	case "false", "0", "no", "off", "n", "f":
		return false
	}
	b.fail(domain.Invalid(name, "must be a boolean, got %q", raw))
	return def
}

// image reads a required file part in full.
func (b *binder) image(name string) services.Image {
	if b.r.MultipartForm == nil {
		b.fail(domain.Invalid(name, "file required"))
		return services.Image{}
	}
	file, header, err := b.r.FormFile(name)
	if err != nil {
		b.fail(domain.Invalid(name, "file required"))
		return services.Image{}
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		b.fail(fmt.Errorf("read %s: %w", name, err))
		return services.Image{}
	}
	if len(data) == 0 {
		b.fail(domain.Invalid(name, "file is empty"))
		return services.Image{}
	}
	return services.Image{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}
}

// Package fetch downloads remote files to local paths.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
)

// Fetcher copies the resource at src to the local path dst.
type Fetcher interface {
	Fetch(ctx context.Context, src, dst string) error
}

// Default fetches http(s) URLs over HTTP and everything else through
// grailbio/base/file.
var Default Fetcher = Dispatcher{HTTP: HTTP{}, Other: File{}}

// Dispatcher picks a Fetcher by URL scheme.
type Dispatcher struct {
	HTTP  Fetcher
	Other Fetcher
}

// Fetch implements Fetcher.
func (d Dispatcher) Fetch(ctx context.Context, src, dst string) error {
	if IsHTTP(src) {
		return d.HTTP.Fetch(ctx, src, dst)
	}
	return d.Other.Fetch(ctx, src, dst)
}

// IsHTTP reports whether src is an http or https URL.
func IsHTTP(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Basename returns the last path element of src, ignoring any URL query or
// fragment.
func Basename(src string) string {
	if IsHTTP(src) {
		if u, err := url.Parse(src); err == nil {
			return path.Base(u.Path)
		}
	}
	return path.Base(src)
}

// HTTP downloads with an http.Client.
type HTTP struct {
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

// Fetch implements Fetcher.
func (h HTTP) Fetch(ctx context.Context, src, dst string) (err error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return errors.E(errors.Invalid, src, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.E(errors.Unavailable, src, err)
	}
	defer resp.Body.Close() // nolint: errcheck
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.E(errors.NotExist, fmt.Sprintf("%s: %s", src, resp.Status))
	case resp.StatusCode != http.StatusOK:
		return errors.E(errors.Unavailable, fmt.Sprintf("%s: %s", src, resp.Status))
	}
	return writeFile(ctx, dst, resp.Body)
}

// File copies through grailbio/base/file, so local paths and any registered
// file implementation work as sources.
type File struct{}

// Fetch implements Fetcher.
func (File) Fetch(ctx context.Context, src, dst string) (err error) {
	in, err := file.Open(ctx, src)
	if err != nil {
		return errors.E(errors.NotExist, src, err)
	}
	defer file.CloseAndReport(ctx, in, &err)
	return writeFile(ctx, dst, in.Reader(ctx))
}

func writeFile(ctx context.Context, dst string, r io.Reader) (err error) {
	out, err := file.Create(ctx, dst)
	if err != nil {
		return errors.E("create", dst, err)
	}
	defer file.CloseAndReport(ctx, out, &err)
	if _, err = io.Copy(out.Writer(ctx), r); err != nil {
		return errors.E("write", dst, err)
	}
	return nil
}

// ToDir fetches src into dir under its basename and returns the basename.
func ToDir(ctx context.Context, f Fetcher, src, dir string) (string, error) {
	name := Basename(src)
	log.Printf("Downloading file '%s'...", name)
	if err := f.Fetch(ctx, src, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

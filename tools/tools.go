// Package tools wraps the external programs used to prepare genome assets:
// block compression, tabix indexing and GFF3 to genePred conversion. Each
// program is hidden behind a small interface so that pipelines can run with
// native implementations or fakes.
package tools

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"v.io/x/lib/gosh"
	"v.io/x/lib/lookpath"
)

// Compressor block-compresses a file in place. It returns the path of the
// compressed file; the uncompressed input is removed.
type Compressor interface {
	Compress(ctx context.Context, path string) (string, error)
}

// Indexer writes a positional index next to a compressed file.
type Indexer interface {
	Index(ctx context.Context, path string) error
}

// Converter converts the file at in and writes the result to out.
type Converter interface {
	Convert(ctx context.Context, in, out string) error
}

// Look returns the absolute path of the named binary on PATH.
func Look(name string) (string, error) {
	sh := gosh.NewShell(nil)
	sh.ContinueOnError = true
	defer sh.Cleanup()
	path, err := lookpath.Look(sh.Vars, name)
	if err != nil {
		return "", errors.E(errors.NotExist, fmt.Sprintf("%s not found in PATH", name), err)
	}
	return path, nil
}

// run executes a program to completion. A non-zero exit status is reported
// as an error naming the program and its exit code.
func run(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sh := gosh.NewShell(nil)
	sh.ContinueOnError = true
	defer sh.Cleanup()
	log.Debug.Printf("running %s %s", name, strings.Join(args, " "))
	cmd := sh.Cmd(name, args...)
	out := cmd.CombinedOutput()
	if cmd.Err == nil {
		return nil
	}
	if exitErr, ok := cmd.Err.(*exec.ExitError); ok {
		return errors.E(fmt.Sprintf("%s failed with return code %d: %s", name, exitErr.ExitCode(), strings.TrimSpace(out)))
	}
	return errors.E(fmt.Sprintf("%s: %s", name, strings.TrimSpace(out)), cmd.Err)
}

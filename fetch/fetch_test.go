package fetch_test

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/igvgenome/fetch"
	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasename(t *testing.T) {
	assert.Equal(t, "hg38.fa", fetch.Basename("https://example.org/genomes/hg38.fa?x=1#y"))
	assert.Equal(t, "a.gff3.gz", fetch.Basename("/data/a.gff3.gz"))
	assert.Equal(t, "a.txt", fetch.Basename("a.txt"))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cytoband.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("chr1\t0\t100\tp36\tgneg\n")) // nolint: errcheck
	}))
	defer srv.Close()

	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	name, err := fetch.ToDir(ctx, fetch.Default, srv.URL+"/cytoband.txt", tempDir)
	require.NoError(t, err)
	assert.Equal(t, "cytoband.txt", name)
	data, err := ioutil.ReadFile(filepath.Join(tempDir, name))
	require.NoError(t, err)
	assert.Equal(t, "chr1\t0\t100\tp36\tgneg\n", string(data))

	err = fetch.HTTP{Client: srv.Client()}.Fetch(ctx, srv.URL+"/missing", filepath.Join(tempDir, "missing"))
	assert.True(t, errors.Is(errors.NotExist, err))
}

func TestFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	src := filepath.Join(tempDir, "src.txt")
	require.NoError(t, ioutil.WriteFile(src, []byte("hello"), 0644))
	dst := filepath.Join(tempDir, "dst.txt")
	require.NoError(t, fetch.Default.Fetch(ctx, src, dst))
	data, err := ioutil.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	err = fetch.File{}.Fetch(ctx, filepath.Join(tempDir, "nope"), dst)
	assert.True(t, errors.Is(errors.NotExist, err))
}

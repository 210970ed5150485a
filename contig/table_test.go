package contig

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader("# name\trank\nX\t23\nY\t24\nMT\t25\n"))
	require.NoError(t, err)
	assert.Equal(t, Table{"X": 23, "Y": 24, "MT": 25}, table)
	assert.Equal(t, []string{"X", "Y", "MT"}, table.Names())

	_, err = ReadTable(strings.NewReader("X\t23\nX\t24\n"))
	assert.True(t, errors.Is(errors.Invalid, err))

	_, err = ReadTable(strings.NewReader("X\tfirst\n"))
	assert.Error(t, err)
}

func TestLoadTable(t *testing.T) {
	ctx := context.Background()
	table, err := LoadTable(ctx, "minimal")
	require.NoError(t, err)
	assert.Equal(t, MinimalTable, table)

	table, err = LoadTable(ctx, "grch38")
	require.NoError(t, err)
	assert.Equal(t, 1429, table["chrY_KI270740v1_random"])
	assert.Len(t, table, 433)

	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tempDir, "order.tsv")
	require.NoError(t, ioutil.WriteFile(path, []byte("X\t30\nY\t31\n"), 0644))
	table, err = LoadTable(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, Table{"X": 30, "Y": 31}, table)

	_, err = LoadTable(ctx, filepath.Join(tempDir, "missing.tsv"))
	assert.True(t, errors.Is(errors.NotExist, err))
}

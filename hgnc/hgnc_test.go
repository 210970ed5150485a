package hgnc

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

const testTable = "hgnc_id\tsymbol\tname\tlocus_group\n" +
	"HGNC:5\tA1BG\talpha-1-B glycoprotein\tprotein-coding gene\n" +
	"HGNC:11998\tTP53\ttumor protein p53\tprotein-coding gene\n" +
	"HGNC:37133\tA1BG-AS1 \tA1BG antisense RNA 1\tnon-coding RNA\n"

func TestRead(t *testing.T) {
	m, err := Read(strings.NewReader(testTable))
	assert.NoError(t, err)
	expect.EQ(t, m.Len(), 3)

	s, ok := m.Symbol(11998)
	expect.True(t, ok)
	expect.EQ(t, s, "TP53")
	s, _ = m.Symbol(37133)
	expect.EQ(t, s, "A1BG-AS1")
	id, ok := m.ID("A1BG")
	expect.True(t, ok)
	expect.EQ(t, id, 5)
	_, ok = m.Symbol(6)
	expect.False(t, ok)
}

func TestReadBadID(t *testing.T) {
	_, err := Read(strings.NewReader("hgnc_id\tsymbol\tname\nHGNC:x\tA\tB\n"))
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestParseID(t *testing.T) {
	for _, s := range []string{"HGNC:42", "42", " HGNC:42\n"} {
		id, err := ParseID(s)
		assert.NoError(t, err)
		expect.EQ(t, id, 42)
	}
	_, err := ParseID("HGNC:")
	expect.True(t, err != nil)
}

func TestReadPath(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tempDir, "hgnc.tsv")
	assert.NoError(t, ioutil.WriteFile(path, []byte(testTable), 0644))

	ctx := context.Background()
	m, err := ReadPath(ctx, path)
	assert.NoError(t, err)
	expect.EQ(t, m.Len(), 3)

	_, err = ReadPath(ctx, filepath.Join(tempDir, "missing"))
	expect.True(t, errors.Is(errors.NotExist, err))
}

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/igvgenome/tools"
	"github.com/grailbio/testutil"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hgncTable = "hgnc_id\tsymbol\tname\n" +
	"HGNC:11998\tTP53\ttumor protein p53\n" +
	"HGNC:37102\tDDX11L1\tDEAD/H-box helicase 11 like 1\n"

const annotationGFF = "##gff-version 3\n" +
	"#!genome-build GRCh38.p13\n" +
	"17\tensembl_havana\tgene\t7661779\t7687538\t.\t-\t.\tID=gene:ENSG00000141510;Name=TP53;gene_id=ENSG00000141510;description=tumor protein p53 [Source:HGNC Symbol%3BAcc:HGNC:11998]\n" +
	"17\tensembl_havana\tmRNA\t7661779\t7687538\t.\t-\t.\tID=transcript:ENST00000269305;Parent=gene:ENSG00000141510\n" +
	"###\n" +
	"GL000009.2\tensembl\tlnc_RNA\t56140\t58376\t.\t-\t.\tID=transcript:ENST00000618686;Parent=gene:ENSG00000278704\n" +
	"GL000009.2\tensembl\tncRNA_gene\t56140\t58376\t.\t-\t.\tID=gene:ENSG00000278704;gene_id=ENSG00000278704;Name=BX004987.1\n" +
	"1\thavana\tncRNA_gene\t29554\t31109\t.\t+\t.\tID=gene:ENSG00000243485;Name=MIR1302-2HG;gene_id=ENSG00000243485\n" +
	"1\thavana\tlnc_RNA\t29554\t31097\t.\t+\t.\tID=transcript:ENST00000473358;Parent=gene:ENSG00000243485\n" +
	"X\thavana\tpseudogene\t100\t200\t.\t+\t.\tID=gene:ENSG00000223972;gene_id=ENSG00000223972;description=x [Source:HGNC Symbol%3BAcc:HGNC:37102]\n"

// The records fakeConverter expects after filtering, reclassification and
// sorting.
const sortedGFF = "##gff-version 3\n" +
	"#!genome-build GRCh38.p13\n" +
	"1\thavana\tgene\t29554\t31109\t.\t+\t.\tID=gene:ENSG00000243485;Name=MIR1302-2HG;gene_id=ENSG00000243485\n" +
	"1\thavana\ttranscript\t29554\t31097\t.\t+\t.\tID=transcript:ENST00000473358;Parent=gene:ENSG00000243485\n" +
	"17\tensembl_havana\tgene\t7661779\t7687538\t.\t-\t.\tID=gene:ENSG00000141510;Name=TP53;gene_id=ENSG00000141510;description=tumor protein p53 [Source:HGNC Symbol%3BAcc:HGNC:11998]\n" +
	"17\tensembl_havana\ttranscript\t7661779\t7687538\t.\t-\t.\tID=transcript:ENST00000269305;Parent=gene:ENSG00000141510\n" +
	"X\thavana\tgene\t100\t200\t.\t+\t.\tID=gene:ENSG00000223972;gene_id=ENSG00000223972;description=x [Source:HGNC Symbol%3BAcc:HGNC:37102]\n"

const convertedTable = "transcript:ENST00000473358\t1\t+\t29553\t31097\t31097\t31097\t1\t29553,\t31097,\t0\tgene:ENSG00000243485\tnone\tnone\t-1,\n" +
	"transcript:ENST00000269305\t17\t-\t7661778\t7687538\t7668401\t7687490\t1\t7661778,\t7687538,\t0\tgene:ENSG00000141510\tcmpl\tcmpl\t0,\n" +
	"transcript:ENST00000618686\tGL000009.2\t-\t56139\t58376\t58376\t58376\t1\t56139,\t58376,\t0\tgene:ENSG00000278704\tnone\tnone\t-1,\n"

const igvTable = "243485\tENST00000473358\t1\t+\t29553\t31097\t31097\t31097\t1\t29553,\t31097,\t0\tMIR1302-2HG\tnone\tnone\t-1,\n" +
	"141510\tENST00000269305\t17\t-\t7661778\t7687538\t7668401\t7687490\t1\t7661778,\t7687538,\t0\tTP53\tcmpl\tcmpl\t0,\n" +
	"278704\tENST00000618686\tGL000009.2\t-\t56139\t58376\t58376\t58376\t1\t56139,\t58376,\t0\tBX004987.1\tnone\tnone\t-1,\n"

// fakeConverter checks its input and writes a fixed genePred table. The
// last transcript lies on a contig dropped before conversion; its gene must
// still resolve through the unfiltered index.
type fakeConverter struct {
	t      *testing.T
	output string
	inputs []string
}

func (c *fakeConverter) Convert(ctx context.Context, in, out string) error {
	data, err := ioutil.ReadFile(in)
	require.NoError(c.t, err)
	assert.Equal(c.t, sortedGFF, string(data))
	c.inputs = append(c.inputs, in)
	return ioutil.WriteFile(out, []byte(c.output), 0644)
}

func writeGenome(t *testing.T, path string) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, m := range [][2]string{
		{"property.txt", "fasta=false\nid=hg38\nname=Human (hg38)\ngeneFile=refGene.txt\n"},
		{"refGene.txt", "old\n"},
		{"cytoBand.txt", "chr1\t0\t100\tp36\tgneg\n"},
	} {
		w, err := zw.Create(m[0])
		require.NoError(t, err)
		_, err = w.Write([]byte(m[1]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, ioutil.WriteFile(path, buf.Bytes(), 0644))
}

func readGenome(t *testing.T, path string) map[string]string {
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close() // nolint: errcheck
	members := map[string]string{}
	for _, f := range zr.File {
		r, err := f.Open()
		require.NoError(t, err)
		data, err := ioutil.ReadAll(r)
		require.NoError(t, err)
		members[f.Name] = string(data)
	}
	return members
}

func genePredFixture(t *testing.T, dir string) genePredOpts {
	opts := genePredOpts{
		gffPath:     filepath.Join(dir, "annotation.gff3"),
		hgncPath:    filepath.Join(dir, "hgnc.tsv"),
		genomePath:  filepath.Join(dir, "hg38.genome"),
		outPath:     filepath.Join(dir, "hg38_ensembl.genome"),
		contigOrder: "minimal",
		idSuffix:    "_ensembl",
		nameSuffix:  " ensembl",
	}
	require.NoError(t, ioutil.WriteFile(opts.gffPath, []byte(annotationGFF), 0644))
	require.NoError(t, ioutil.WriteFile(opts.hgncPath, []byte(hgncTable), 0644))
	writeGenome(t, opts.genomePath)
	return opts
}

func TestGenePred(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	opts := genePredFixture(t, tempDir)
	conv := &fakeConverter{t: t, output: convertedTable}
	opts.converter = conv

	require.NoError(t, convertGenePred(context.Background(), opts))
	members := readGenome(t, opts.outPath)
	assert.Equal(t, igvTable, members["refGene.txt"])
	assert.Equal(t, "fasta=false\nid=hg38_ensembl\nname=Human (hg38) ensembl\ngeneFile=refGene.txt\n", members["property.txt"])
	assert.Equal(t, "chr1\t0\t100\tp36\tgneg\n", members["cytoBand.txt"])

	// The scratch directory is gone.
	require.Len(t, conv.inputs, 1)
	_, err := os.Stat(filepath.Dir(conv.inputs[0]))
	assert.True(t, os.IsNotExist(err))
}

func TestGenePredUnresolvedGene(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	opts := genePredFixture(t, tempDir)
	conv := &fakeConverter{t: t, output: convertedTable +
		"transcript:ENST00000000001\t1\t+\t1\t2\t2\t2\t1\t1,\t2,\t0\tgene:ENSG00000000001\tnone\tnone\t-1,\n"}
	opts.converter = conv

	err := convertGenePred(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, errors.Is(errors.NotExist, err))
	_, err = os.Stat(opts.outPath)
	assert.True(t, os.IsNotExist(err))
	// Temporary files are removed on failure too.
	require.Len(t, conv.inputs, 1)
	_, err = os.Stat(filepath.Dir(conv.inputs[0]))
	assert.True(t, os.IsNotExist(err))
}

func TestGenePredMissingInput(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	opts := genePredFixture(t, tempDir)
	opts.hgncPath = filepath.Join(tempDir, "missing.tsv")
	opts.converter = &fakeConverter{t: t}
	err := convertGenePred(context.Background(), opts)
	assert.True(t, errors.Is(errors.NotExist, err))
	assert.True(t, strings.Contains(err.Error(), "hgnc mapping file not found"), err.Error())
}

type fakeFetcher struct {
	dir     string
	fetched *int
}

func (f fakeFetcher) Fetch(ctx context.Context, src, dst string) error {
	if f.fetched != nil {
		*f.fetched++
	}
	data, err := ioutil.ReadFile(filepath.Join(f.dir, filepath.Base(src)))
	if err != nil {
		return err
	}
	return ioutil.WriteFile(dst, data, 0644)
}

type fakeIndexer struct{}

func (fakeIndexer) Index(ctx context.Context, path string) error {
	return ioutil.WriteFile(path+".tbi", nil, 0644)
}

func TestJSON(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	srcDir := filepath.Join(tempDir, "src")
	outDir := filepath.Join(tempDir, "out")
	require.NoError(t, os.Mkdir(srcDir, 0755))
	require.NoError(t, os.Mkdir(outDir, 0755))
	for name, data := range map[string]string{
		"hg38.fa":        ">chr1\nACGT\n",
		"hg38.fa.fai":    "chr1\t4\t6\t4\t5\n",
		"cytoBand.txt":   "chr1\t0\t4\tp36\tgneg\n",
		"hg38_alias.tab": "chrM\tMT\n",
		"genes.gff3":     annotationGFF,
	} {
		require.NoError(t, ioutil.WriteFile(filepath.Join(srcDir, name), []byte(data), 0644))
	}
	tmpl := `{"id": "hg38", "fastaURL": "https://example.org/hg38.fa", "indexURL": "https://example.org/hg38.fa.fai",
"cytobandURL": "https://example.org/cytoBand.txt", "aliasURL": "https://example.org/hg38_alias.tab",
"tracks": [{"name": "Genes", "format": "gff3", "url": "https://example.org/genes.gff3"}]}`
	opts := jsonOpts{
		templatePath: filepath.Join(tempDir, "template.json"),
		hgncPath:     filepath.Join(tempDir, "hgnc.tsv"),
		outPath:      filepath.Join(outDir, "genome.json"),
		contigOrder:  "grch38",
		fetcher:      fakeFetcher{dir: srcDir},
		indexer:      fakeIndexer{},
	}
	require.NoError(t, ioutil.WriteFile(opts.templatePath, []byte(tmpl), 0644))
	require.NoError(t, ioutil.WriteFile(opts.hgncPath, []byte(hgncTable), 0644))
	opts.compressor = tools.BGZF{}

	require.NoError(t, buildJSON(context.Background(), opts))
	data, err := ioutil.ReadFile(opts.outPath)
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "hg38.fa", got["fastaURL"])
	assert.Equal(t, "hg38", got["id"])
	track := got["tracks"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "genes.gff3.gz", track["url"])
	assert.Equal(t, "genes.gff3.gz.tbi", track["indexURL"])
	assert.Equal(t, "Genes", track["name"])

	for _, name := range []string{"hg38.fa", "hg38.fa.fai", "cytoBand.txt", "genes.gff3.gz", "genes.gff3.gz.tbi"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
	alias, err := ioutil.ReadFile(filepath.Join(outDir, "hg38_alias.tab"))
	require.NoError(t, err)
	assert.Equal(t, "chrM\tMT\tchrMT\tM\n", string(alias))
}

func TestJSONMissingInput(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	tmpl := `{"id": "hg38", "fastaURL": "https://example.org/hg38.fa", "indexURL": "https://example.org/hg38.fa.fai"}`
	templatePath := filepath.Join(tempDir, "template.json")
	hgncPath := filepath.Join(tempDir, "hgnc.tsv")
	require.NoError(t, ioutil.WriteFile(templatePath, []byte(tmpl), 0644))
	require.NoError(t, ioutil.WriteFile(hgncPath, []byte(hgncTable), 0644))

	for _, test := range []struct {
		templatePath, hgncPath, want string
	}{
		{templatePath, filepath.Join(tempDir, "missing.tsv"), "hgnc mapping file not found"},
		{filepath.Join(tempDir, "missing.json"), hgncPath, "genome json template file not found"},
		{templatePath, tempDir, "hgnc mapping file not found"},
	} {
		var fetched int
		err := buildJSON(context.Background(), jsonOpts{
			templatePath: test.templatePath,
			hgncPath:     test.hgncPath,
			outPath:      filepath.Join(tempDir, "genome.json"),
			contigOrder:  "grch38",
			fetcher:      fakeFetcher{dir: tempDir, fetched: &fetched},
			compressor:   tools.BGZF{},
			indexer:      fakeIndexer{},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(errors.NotExist, err), err.Error())
		assert.True(t, strings.Contains(err.Error(), test.want), err.Error())
		assert.Equal(t, 0, fetched)
		_, err = os.Stat(filepath.Join(tempDir, "genome.json"))
		assert.True(t, os.IsNotExist(err))
	}
}

func TestContigOrderFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tempDir, "order.tsv")
	require.NoError(t, ioutil.WriteFile(path, []byte("X\t23\nY\t24\n"), 0644))
	order, err := newOrder(context.Background(), path)
	require.NoError(t, err)
	r, err := order.Rank("Y")
	require.NoError(t, err)
	assert.Equal(t, int64(24), r)

	_, err = newOrder(context.Background(), filepath.Join(tempDir, "missing.tsv"))
	assert.True(t, errors.Is(errors.NotExist, err))
}

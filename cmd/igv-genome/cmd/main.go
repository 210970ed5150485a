package cmd

import (
	"context"
	"fmt"
	golog "log"
	"runtime"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/igvgenome/annotation"
	"github.com/grailbio/igvgenome/contig"
	"github.com/grailbio/igvgenome/tools"
	"v.io/x/lib/cmdline"
)

const contigOrderHelp = `Contig order used to sort annotation records. Either a preset
("grch38" or "minimal") or the path of a two-column "name<TAB>rank" table.
Numbered chromosomes sort first, then the table contigs by rank, then GL0 and
KI accessions by accession number.`

func newCmdJSON() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "json",
		Short: "Generate an IGV genome JSON with HGNC gene symbols",
		Long: `
json downloads the reference and track files named by a genome JSON template
into the directory of the output file, patches the GFF3 gene tracks with HGNC
gene symbols, sorts, bgzips and tabix-indexes them, adds chrMT and M aliases
for chrM, and writes a genome JSON that refers to the local files.`,
		ArgsName: "template.json hgnc.tsv output.json",
	}
	var opts jsonOpts
	cmd.Flags.StringVar(&opts.contigOrder, "contig-order", "grch38", contigOrderHelp)
	cmd.Flags.BoolVar(&opts.nativeBGZF, "native-bgzf", false, "Compress tracks in-process instead of running bgzip")
	cmd.Flags.StringVar(&opts.xrefSource, "xref-db", annotation.DefaultSource, "Database named in the description cross-references")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 3 {
			return fmt.Errorf("json takes template.json hgnc.tsv output.json, but got %v", argv)
		}
		opts.templatePath, opts.hgncPath, opts.outPath = argv[0], argv[1], argv[2]
		if opts.nativeBGZF {
			opts.compressor = tools.BGZF{Parallelism: runtime.NumCPU()}
		}
		return buildJSON(context.Background(), opts)
	})
	return cmd
}

func newCmdGenePred() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "genepred",
		Short: "Replace the gene file of an IGV .genome archive",
		Long: `
genepred converts an Ensembl GFF3 annotation to genePred with gff3ToGenePred,
replaces the Ensembl gene ids by HGNC symbols (or by the annotation's gene
names for genes without HGNC id), and writes a copy of the .genome archive
carrying the new gene file.`,
		ArgsName: "annotation.gff3 hgnc.tsv input.genome output.genome",
	}
	var opts genePredOpts
	cmd.Flags.StringVar(&opts.contigOrder, "contig-order", "minimal", contigOrderHelp)
	cmd.Flags.StringVar(&opts.converterPath, "converter", "", "Path of the gff3ToGenePred binary. By default it is looked up in PATH, then downloaded")
	cmd.Flags.StringVar(&opts.converterURL, "converter-url", tools.GFF3ToGenePredURL, "Download URL of gff3ToGenePred")
	cmd.Flags.StringVar(&opts.idSuffix, "id-suffix", "_ensembl", "Suffix appended to the genome id")
	cmd.Flags.StringVar(&opts.nameSuffix, "name-suffix", " ensembl", "Suffix appended to the genome name")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 4 {
			return fmt.Errorf("genepred takes annotation.gff3 hgnc.tsv input.genome output.genome, but got %v", argv)
		}
		opts.gffPath, opts.hgncPath, opts.genomePath, opts.outPath = argv[0], argv[1], argv[2], argv[3]
		return convertGenePred(context.Background(), opts)
	})
	return cmd
}

func newOrder(ctx context.Context, name string) (*contig.Order, error) {
	table, err := contig.LoadTable(ctx, name)
	if err != nil {
		return nil, err
	}
	if _, ok := contig.Presets[name]; !ok {
		log.Printf("contig order %s: %v", name, table.Names())
	}
	return contig.NewOrder(table, contig.DefaultAccessions...)
}

// Run executes the igv-genome command line.
func Run() {
	golog.SetFlags(golog.Ldate | golog.Ltime | golog.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "igv-genome",
			Short:    "Prepare IGV genome assets with HGNC gene symbols",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdJSON(),
				newCmdGenePred(),
			},
		})
}

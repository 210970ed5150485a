/*
igv-genome prepares genome assets for the IGV genome browser, with gene
annotations labelled by HGNC gene symbols.

	igv-genome json [-contig-order=grch38] [-native-bgzf] template.json hgnc.tsv out/genome.json

downloads the files referenced by an IGV genome JSON template into out/,
rewrites the Name attribute of the GFF3 gene tracks from their HGNC
cross-references, re-sorts, compresses and indexes them, and writes the
genome JSON pointing at the local copies.

	igv-genome genepred [-contig-order=minimal] Homo_sapiens.GRCh38.gff3 hgnc.tsv hg38.genome hg38_ensembl.genome

converts an Ensembl GFF3 annotation to genePred with UCSC gff3ToGenePred and
stores it, keyed by HGNC symbols, as the gene file of a copy of an IGV .genome
archive.

The HGNC table is the tab-separated complete set, hgnc_complete_set.txt from
https://www.genenames.org/download/archive/. Its header starts with
"hgnc_id	symbol	name".
*/
package main

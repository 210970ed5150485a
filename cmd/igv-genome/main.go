package main

import "github.com/grailbio/igvgenome/cmd/igv-genome/cmd"

func main() {
	cmd.Run()
}

// vsmsearch indexes a directory of plain-text documents and ranks them
// against natural-language queries using a TF-IDF vector space model.
//
// Usage:
//
//	vsmsearch index
//	vsmsearch query "compress a directory"
//	vsmsearch browse
//	vsmsearch docs report
//	vsmsearch history
package main

import (
	"fmt"
	"os"

	"github.com/corpuslab/vsmsearch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

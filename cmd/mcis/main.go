// Command mcis finds maximum common connected induced subgraphs of graphs
// stored as CSV adjacency matrices.
//
//	mcis solve g.csv h.csv --algo 2          # one algorithm, print the mapping
//	mcis compare g.csv h.csv --timeout 30s   # all eight algorithms side by side
//	mcis generate --n 20 --density 0.3 --output g.csv
package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

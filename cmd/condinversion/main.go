// Command condinversion runs the condition inversion analyzer standalone
// or as a vet tool:
//
//	go vet -vettool=$(which condinversion) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/gnolang/condlint/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}

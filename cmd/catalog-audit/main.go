// Command catalog-audit runs the taxonomy validator in strict mode over the
// full feed catalog. It prints a per-topic drift report and exits non-zero
// iff any invalid topic exists, so publish pipelines can gate on it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/taxonomy"
)

func main() {
	vocabPath := flag.String("vocabulary", "vocabulary.yaml", "path to topic vocabulary file")
	catalogPath := flag.String("catalog", "catalog.yaml", "path to feed catalog file")
	flag.Parse()

	vocab, err := taxonomy.LoadVocabularyFile(*vocabPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load vocabulary:", err)
		os.Exit(2)
	}

	feeds, err := taxonomy.LoadCatalogFile(*catalogPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load catalog:", err)
		os.Exit(2)
	}

	report := taxonomy.Audit(vocab, feeds)
	report.Render(os.Stdout)

	if !report.Clean() {
		os.Exit(1)
	}
}

// Command gst-index is a small harness for exercising the gst package: it
// loads newline-delimited documents, builds a generalized suffix tree, and
// answers a single search or similarity query.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outofforest/gst/gst"
	"github.com/outofforest/gst/internal/normalize"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath string
		fold      bool
		search    string
		similar   string
		showText  bool
	)

	cmd := &cobra.Command{
		Use:   "gst-index",
		Short: "Index newline-delimited documents and answer one search or similarity query",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			docs, err := readDocuments(inputPath)
			if err != nil {
				return fmt.Errorf("read documents: %w", err)
			}
			logger.Info("loaded documents", "count", len(docs))

			tree := gst.New()
			for id, d := range docs {
				if fold {
					d = normalize.Fold(d)
				}
				if err := tree.Insert(d, id); err != nil {
					return fmt.Errorf("insert document %d: %w", id, err)
				}
			}
			tree.Aggregate()

			switch {
			case search != "":
				return runSearch(cmd, tree, docs, search, showText)
			case similar != "":
				return runSimilar(cmd, tree, docs, similar, showText)
			default:
				return fmt.Errorf("one of --search or --similar is required")
			}
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a newline-delimited document file (default: stdin)")
	cmd.Flags().BoolVar(&fold, "fold", false, "normalize documents before indexing (lowercase, alphanumeric only)")
	cmd.Flags().StringVar(&search, "search", "", "exact substring query")
	cmd.Flags().StringVar(&similar, "similar", "", "similarity query as \"text,ratio\"")
	cmd.Flags().BoolVar(&showText, "show-text", false, "print the original document text alongside matching ids")

	return cmd
}

func readDocuments(path string) ([]string, error) {
	f := os.Stdin
	if path != "" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var docs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		docs = append(docs, scanner.Text())
	}
	return docs, scanner.Err()
}

func runSearch(cmd *cobra.Command, tree *gst.Tree, docs []string, query string, showText bool) error {
	ids, err := tree.Search(query)
	if err != nil {
		return err
	}
	printIDs(cmd, docs, ids, showText)
	return nil
}

func runSimilar(cmd *cobra.Command, tree *gst.Tree, docs []string, spec string, showText bool) error {
	query, ratio, err := parseSimilarSpec(spec)
	if err != nil {
		return err
	}
	ids, err := tree.Similar(query, ratio)
	if err != nil {
		return err
	}
	printIDs(cmd, docs, ids, showText)
	return nil
}

func parseSimilarSpec(spec string) (string, float64, error) {
	idx := strings.LastIndex(spec, ",")
	if idx < 0 {
		return "", 0, fmt.Errorf("--similar expects \"text,ratio\", got %q", spec)
	}
	ratio, err := strconv.ParseFloat(spec[idx+1:], 64)
	if err != nil {
		return "", 0, fmt.Errorf("--similar ratio: %w", err)
	}
	return spec[:idx], ratio, nil
}

// printIDs writes one matching id per line; with showText it also writes the
// input line as read, before any folding.
func printIDs(cmd *cobra.Command, docs []string, ids []int, showText bool) {
	for _, id := range ids {
		if showText {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, docs[id])
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
}

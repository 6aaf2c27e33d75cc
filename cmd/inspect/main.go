package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/raggedlabs/ragged/builder"
	"github.com/raggedlabs/ragged/kernel"
	"github.com/raggedlabs/ragged/kernel/native"
	"github.com/raggedlabs/ragged/layout"
	"github.com/raggedlabs/ragged/strop"
)

func main() {
	var (
		jsonFile    = flag.String("json", "", "Path to a JSON array file")
		op          = flag.String("op", "", "Operation: flatten|find|find-regex|split|split-regex")
		axis        = flag.Int("axis", 1, "List level for flatten (1 = outermost)")
		pattern     = flag.String("pattern", "", "Pattern for find/split operations")
		ignoreCase  = flag.Bool("ignore-case", false, "Case-insensitive find")
		maxSplits   = flag.Int("max-splits", -1, "Maximum splits per value (-1 = unlimited)")
		reverse     = flag.Bool("reverse", false, "Split from the end of each value")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Verbose kernel logging")
	)
	flag.Parse()

	if *jsonFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -json <file.json> [-op name -pattern p]")
		fmt.Fprintln(os.Stderr, "       inspect -json <file.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		kernel.SetLogger(logger)
		strop.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*jsonFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*jsonFile, *op, *axis, *pattern, *ignoreCase, *maxSplits, *reverse); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(jsonFile, op string, axis int, pattern string, ignoreCase bool, maxSplits int, reverse bool) error {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	tree, err := builder.FromJSON(data)
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}

	fmt.Printf("Layout: %s\n", jsonFile)
	fmt.Printf("Depth: %d  Length: %d\n\n", layout.Depth(tree), tree.Length())
	fmt.Println(describe(tree, 0))

	if op == "" {
		return nil
	}

	out, err := runOp(tree, op, axis, pattern, ignoreCase, maxSplits, reverse)
	if err != nil {
		return err
	}

	fmt.Printf("\nResult of %s:\n", op)
	fmt.Println(describe(out, 0))
	encoded, err := json.MarshalIndent(layout.Values(out), "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func runOp(tree layout.Content, op string, axis int, pattern string, ignoreCase bool, maxSplits int, reverse bool) (layout.Content, error) {
	provider := native.New()
	findOpts := kernel.FindOptions{IgnoreCase: ignoreCase}
	splitOpts := kernel.SplitOptions{MaxSplits: maxSplits, Reverse: reverse}

	switch op {
	case "flatten":
		return layout.Flatten(tree, axis)
	case "find":
		return strop.FindSubstring(tree, provider, pattern, findOpts)
	case "find-regex":
		return strop.FindSubstringRegex(tree, provider, pattern, findOpts)
	case "split":
		return strop.SplitPattern(tree, provider, pattern, splitOpts)
	case "split-regex":
		return strop.SplitPatternRegex(tree, provider, pattern, splitOpts)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

// describe renders the tree structure, one node per line.
func describe(c layout.Content, indent int) string {
	pad := strings.Repeat("  ", indent)
	switch v := c.(type) {
	case *layout.Leaf:
		return fmt.Sprintf("%sleaf %s len=%d", pad, v.DType(), v.Length())
	case *layout.ListOffset:
		return fmt.Sprintf("%slist len=%d offsets=%v\n%s",
			pad, v.Length(), previewOffsets(v.Offsets()), describe(v.Child(), indent+1))
	case *layout.Record:
		var b strings.Builder
		fmt.Fprintf(&b, "%srecord len=%d", pad, v.Length())
		for i, name := range v.Names() {
			fmt.Fprintf(&b, "\n%s%s:\n%s", pad+"  ", name, describe(v.Fields()[i], indent+2))
		}
		return b.String()
	default:
		return pad + "unknown"
	}
}

func previewOffsets(ix layout.Index64) []int64 {
	const max = 12
	data := ix.Data()
	if len(data) <= max {
		return data
	}
	return data[:max]
}

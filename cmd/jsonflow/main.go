// Command jsonflow infers and merges an Avro-style schema from a
// gzip-compressed, newline-delimited JSON file. It wires the reader, infer,
// merge, and fold packages together, the same thin role
// cmd/kfsmerge/main.go plays over the merge/schema/validate packages in this
// repo's teacher.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbcuni/jsonflow-schema/fold"
	"github.com/nbcuni/jsonflow-schema/reader"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		recordName string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "jsonflow",
		Short: "Infer and merge an Avro-style schema from a gzipped JSON-lines file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return fmt.Errorf("--input is required")
			}
			return run(inputPath, outputPath, recordName, pretty)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&inputPath, "input", "", "Path to a gzip-compressed, newline-delimited JSON file (required)")
	flags.StringVar(&outputPath, "o", "", "Output file path (default: stdout)")
	flags.StringVar(&recordName, "record-name", fold.RecordName, "Name given to the top-level inferred record")
	flags.BoolVar(&pretty, "pretty", true, "Pretty-print the schema JSON")

	return cmd
}

func run(inputPath, outputPath, recordName string, pretty bool) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	lines, err := reader.NewGzipLineSource(f)
	if err != nil {
		return fmt.Errorf("open gzip stream: %w", err)
	}
	defer lines.Close()

	finalSchema, err := fold.FoldNamed(reader.NewJSONSource(lines), recordName)
	if err != nil {
		return fmt.Errorf("infer schema: %w", err)
	}

	var output []byte
	if pretty {
		output, err = json.MarshalIndent(finalSchema, "", "  ")
	} else {
		output, err = json.Marshal(finalSchema)
	}
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, output, 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Schema written to %s\n", outputPath)
		return nil
	}

	fmt.Println(string(output))
	return nil
}

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/5l1v3r1/lifer/pkg/lnk"
	"github.com/spf13/cobra"
)

var (
	short      bool
	output     string
	jsonOut    bool
	showVer    bool
	logger     = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:   "lnkinspect <path>...",
	Short: "Decode and inspect Windows Shell Link (.lnk) files",
	Long: `lnkinspect parses MS-SHLLINK shortcut files and reports their
header, LinkInfo, StringData, and ExtraData contents.

A path may be a single directory (every regular file inside is attempted)
or one or more individual files.`,
	Args: cobra.MinimumNArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVer {
			fmt.Println(versionString())
			return nil
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		return runScan(args)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&short, "short", "s", false, "short-form output, omitting many fields")
	rootCmd.Flags().StringVarP(&output, "output", "o", "txt", "output format: csv, tsv, or txt")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON instead of csv/tsv/txt")
	rootCmd.Flags().BoolVarP(&showVer, "version", "v", false, "print version and exit")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScan(paths []string) error {
	files, err := expandPaths(paths)
	if err != nil {
		return err
	}

	switch output {
	case "csv", "tsv", "txt":
	default:
		return fmt.Errorf("unsupported output format %q: want csv, tsv, or txt", output)
	}

	var records []lnk.Record
	for _, f := range files {
		rec, err := lnk.ParseFile(f)
		if err != nil {
			logger.Warn("skipping file", "path", f, "reason", err.Error())
			continue
		}
		records = append(records, rec)
	}

	if jsonOut {
		return printJSONRecords(records)
	}
	return printRecords(records)
}

// expandPaths resolves the CLI's positional arguments into a flat file
// list: a lone directory is walked non-recursively, anything else is used
// as-is. A missing path is a fatal argument error (spec §6: "non-zero on
// fatal argument or stat error").
func expandPaths(paths []string) ([]string, error) {
	if len(paths) == 1 {
		info, err := os.Stat(paths[0])
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", paths[0], err)
		}
		if info.IsDir() {
			entries, err := os.ReadDir(paths[0])
			if err != nil {
				return nil, fmt.Errorf("read dir %s: %w", paths[0], err)
			}
			var files []string
			for _, e := range entries {
				if !e.IsDir() {
					files = append(files, filepath.Join(paths[0], e.Name()))
				}
			}
			return files, nil
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return paths, nil
}

func printJSONRecords(records []lnk.Record) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func printRecords(records []lnk.Record) error {
	if output == "txt" {
		for _, rec := range records {
			printTextRecord(rec)
		}
		return nil
	}

	sep := rune(',')
	if output == "tsv" {
		sep = '\t'
	}
	w := csv.NewWriter(os.Stdout)
	w.Comma = sep
	defer w.Flush()

	if err := w.Write(csvHeader()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(csvRow(rec)); err != nil {
			return err
		}
	}
	return nil
}

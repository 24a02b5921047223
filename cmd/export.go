package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"ctxpack/pkg/config"
	"ctxpack/pkg/export"
	"ctxpack/pkg/ignore"
	"ctxpack/pkg/scan"
	"ctxpack/pkg/sink"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ignoreFileName is the per-project ignore file loaded from the root.
const ignoreFileName = ".ctxpackignore"

var exportCmd = &cobra.Command{
	Use:   "export [root]",
	Short: "Export project files into one or more bounded bundles",
	Long: `Export discovers files under the given root (default "."), encodes
them in the selected format, and writes one or more segments that each fit
the chunk budget. A single file is never split across segments, so one
oversized file yields one over-budget segment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "", "Output format: plain, markdown or xml")
	exportCmd.Flags().IntP("budget", "b", 0, "Chunk budget in units per segment (0 = single segment)")
	exportCmd.Flags().StringP("output", "o", "", "Output base path for segment files")
	exportCmd.Flags().Bool("tree", false, "Prepend the directory tree to the first segment")
	exportCmd.Flags().Bool("copy", false, "Copy the export to the clipboard instead of writing files")
	exportCmd.Flags().Int("max-file-size-kb", 0, "Skip files larger than this at discovery time (0 = no cap)")
	exportCmd.Flags().Int("prefetch", 0, "Bounded read-ahead window (<=1 disables)")
	exportCmd.Flags().StringArray("ignore", nil, "Additional ignore patterns")
	exportCmd.Flags().String("global-ignore", "", "Path to a global ignore file")
	exportCmd.Flags().String("config", "", "Path to a config file")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := resolveConfig(cmd, root)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if cfg.Budget > 0 && format == export.FormatXML {
		log.Warn("Chunked xml output is a fragment stream, not one well-formed document")
	}

	extraPatterns, _ := cmd.Flags().GetStringArray("ignore")
	matcher, err := buildIgnore(cmd, root, append(cfg.Ignore, extraPatterns...))
	if err != nil {
		return err
	}

	scanner := scan.New(root, matcher, cfg.MaxFileSizeKB, log)
	paths, err := scanner.Collect()
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}
	if len(paths) == 0 {
		log.Warn("No files to export after filtering", zap.String("root", root))
		return nil
	}

	var dest sink.Sink
	if cfg.Copy {
		dest = sink.NewClipboardSink(format, log)
	} else {
		dest = sink.NewFileSink(cfg.Output, format, log)
	}

	opts := export.Options{
		Format:      format,
		Budget:      cfg.Budget,
		IncludeTree: cfg.Tree,
		Prefetch:    cfg.Prefetch,
		Progress:    progressReporter(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	asm := export.NewAssembler(scan.NewStore(root), opts, log)
	runErr := asm.Run(ctx, paths, dest.Write)
	finishProgress()

	if errors.Is(runErr, context.Canceled) {
		log.Warn("Export cancelled; segments already written remain valid")
	} else if runErr != nil {
		return fmt.Errorf("export failed: %w", runErr)
	}

	if err := dest.Close(); err != nil {
		return err
	}

	log.Info("Export complete",
		zap.String("root", root),
		zap.Int("files", len(paths)),
		zap.String("format", string(format)))
	return nil
}

// resolveConfig loads the config file and overlays any flags the user set.
func resolveConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault(root)
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("budget") {
		cfg.Budget, _ = flags.GetInt("budget")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("tree") {
		cfg.Tree, _ = flags.GetBool("tree")
	}
	if flags.Changed("copy") {
		cfg.Copy, _ = flags.GetBool("copy")
	}
	if flags.Changed("max-file-size-kb") {
		cfg.MaxFileSizeKB, _ = flags.GetInt("max-file-size-kb")
	}
	if flags.Changed("prefetch") {
		cfg.Prefetch, _ = flags.GetInt("prefetch")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildIgnore compiles the project ignore file, an optional global ignore
// file, and pattern lines from config and flags.
func buildIgnore(cmd *cobra.Command, root string, patterns []string) (*ignore.Ignore, error) {
	gi := ignore.New(log)

	globalPath, _ := cmd.Flags().GetString("global-ignore")
	if globalPath == "" {
		globalPath = os.Getenv("CTXPACKIGNORE_GLOBAL")
	}
	if globalPath != "" {
		if err := gi.CompileFile(globalPath); err != nil {
			return nil, fmt.Errorf("failed to load global ignore file: %w", err)
		}
	}

	if err := gi.CompileFile(filepath.Join(root, ignoreFileName)); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ignoreFileName, err)
	}

	gi.CompileLines(patterns...)
	log.Debug("Compiled ignore patterns", zap.Int("totalPatterns", gi.Len()))
	return gi, nil
}

// progressReporter returns a per-file progress callback when stderr is a
// terminal, nil otherwise.
func progressReporter() func(processed, total int) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return func(processed, total int) {
		fmt.Fprintf(os.Stderr, "\rProcessed %d/%d files", processed, total)
	}
}

// finishProgress terminates the progress line when one was being drawn.
func finishProgress() {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintln(os.Stderr)
	}
}

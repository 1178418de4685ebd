package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/venmoq/venmoq/pkg/config"
	"github.com/venmoq/venmoq/pkg/models"
	"github.com/venmoq/venmoq/pkg/parser"
	"github.com/venmoq/venmoq/pkg/quicken"
)

// outputSuffix is appended to the input basename when no explicit output
// path is given.
const outputSuffix = "_for_Quicken.csv"

type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config: cfg,
		logger: logger,
		parser: parser.New(logger, cfg.Account, cfg.DateFormat),
	}
}

// Process converts the statement at inputPath, or every statement in it when
// the path is a directory. The input must exist before any processing
// starts.
func (p *Processor) Process(inputPath string) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("input %s: %w", inputPath, err)
	}
	if info.IsDir() {
		return p.ProcessDirectory(inputPath)
	}
	return p.ProcessFile(inputPath)
}

// ProcessDirectory converts every .csv statement in dir, skipping files this
// tool produced. Failures are logged per file and do not stop the rest. A
// configured output path must be a directory, otherwise every statement
// would land in the same file.
func (p *Processor) ProcessDirectory(dir string) error {
	if out := p.config.OutputPath; out != "" {
		info, err := os.Stat(out)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("output %s must be an existing directory when converting a directory", out)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".csv") || strings.HasSuffix(name, outputSuffix) {
			continue
		}
		if err := p.ProcessFile(filepath.Join(dir, name)); err != nil {
			p.logger.Error("failed to process file", "file", name, "error", err)
		}
	}
	return nil
}

// ProcessFile converts a single statement file and writes the Quicken CSV.
func (p *Processor) ProcessFile(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	result, err := p.parser.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	outputPath := p.determineOutputPath(inputPath)
	if outputPath == "-" {
		if err := quicken.Write(os.Stdout, result.Transactions); err != nil {
			return err
		}
	} else if err := p.writeFile(outputPath, result); err != nil {
		return err
	}

	p.logger.Info("conversion complete",
		"input", inputPath,
		"output", outputPath,
		"transactions", result.Written(),
		"balance_lines_skipped", result.BalancesSkipped)
	return nil
}

func (p *Processor) writeFile(outputPath string, result *models.Result) error {
	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer output.Close()

	if err := quicken.Write(output, result.Transactions); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// determineOutputPath places the output beside the input as
// <basename>_for_Quicken.csv unless the config names a path. A configured
// directory keeps the derived filename inside it.
func (p *Processor) determineOutputPath(inputPath string) string {
	derived := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + outputSuffix

	out := p.config.OutputPath
	switch {
	case out == "":
		return filepath.Join(filepath.Dir(inputPath), derived)
	case out == "-":
		return "-"
	default:
		if info, err := os.Stat(out); err == nil && info.IsDir() {
			return filepath.Join(out, derived)
		}
		return out
	}
}

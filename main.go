package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"skewgram/internal/config"
	"skewgram/internal/exporter"
	"skewgram/pkg/skewgram"
)

var cli struct {
	Plots  string `arg:"" optional:"" help:"Plots token stream file. Reads from stdin when omitted." type:"existingfile"`
	Titles string `short:"t" env:"SKEWGRAM_TITLES" help:"Titles file, one title per story, aligned with the plots stream."`
	Config string `short:"c" env:"SKEWGRAM_CONFIG" help:"YAML analysis config file."`

	Format   string `short:"f" enum:"table,csv,json,chart" default:"table" env:"SKEWGRAM_FORMAT" help:"Output format: table, csv, json or chart."`
	MinTotal int    `default:"-1" env:"SKEWGRAM_MIN_TOTAL" help:"Minimum unsmoothed total per word (-1 = config value)."`
	Top      int    `default:"-1" env:"SKEWGRAM_TOP" help:"Number of chart rows (-1 = config value)."`
	Out      string `short:"o" help:"Write <base>.csv and <base>.txt instead of stdout."`
	Stats    bool   `short:"s" help:"Display corpus and table statistics."`

	Encoding  string `env:"SKEWGRAM_ENCODING" help:"Source encoding: utf8, iso-8859-1 or windows-1252 (default from config)."`
	Separator string `env:"SKEWGRAM_SEPARATOR" help:"Story separator marker line (default from config)."`
	Color     bool   `default:"true" negatable:"" help:"Colorize the chart output."`
	Verbose   bool   `short:"v" help:"Verbose progress logging."`
}

func main() {
	// Optional .env next to the binary, flags and real env win.
	_ = godotenv.Load()

	ctx := kong.Parse(&cli,
		kong.Name("skewgram"),
		kong.Description("Scores how strongly the words following \"he\" and \"she\" skew toward either pronoun across a story corpus."),
	)

	ctx.FatalIfErrorf(run())
}

func run() error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	applyFlagOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := zap.NewNop()
	if cli.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
	}
	defer logger.Sync()

	plotsData, err := readPlots()
	if err != nil {
		return err
	}

	if cli.Titles == "" {
		return fmt.Errorf("no titles file: pass --titles")
	}
	titlesData, err := os.ReadFile(cli.Titles)
	if err != nil {
		return fmt.Errorf("reading titles: %w", err)
	}

	start := time.Now()

	stories, err := skewgram.NewImporter(cfg.Separator, cfg.Encoding).Load(plotsData, titlesData)
	if err != nil {
		return err
	}
	logger.Info("corpus loaded", zap.Int("stories", len(stories)))

	table, stats, err := skewgram.Analyze(stories, cfg)
	if err != nil {
		return err
	}

	filtered := table.FilterTotal(cfg.MinTotal)
	logger.Info("corpus scored",
		zap.Int("pairs", stats.Pairs),
		zap.Int("pronoun_pairs", stats.PronounPairs),
		zap.Int("vocabulary", stats.Vocabulary),
		zap.Int("displayed", len(filtered)),
		zap.Duration("elapsed", time.Since(start)),
	)

	// Export to files
	if cli.Out != "" {
		if err := exporter.ExportToFiles(filtered, cli.Out, cfg.Chart.Top, cfg.Chart.Width); err != nil {
			return err
		}
		fmt.Printf("Files exported: %s.csv and %s.txt\n", cli.Out, cli.Out)
		return nil
	}

	// Display statistics
	if cli.Stats {
		exporter.DisplayStats(os.Stdout, stats, filtered)
		return nil
	}

	switch cli.Format {
	case "csv":
		return skewgram.ExportCSV(os.Stdout, filtered)

	case "json":
		return skewgram.ExportJSON(os.Stdout, filtered, stats)

	case "chart":
		chart, err := skewgram.RenderChart(filtered, cfg.Chart.Top, cfg.Chart.Width, cli.Color)
		if err != nil {
			return err
		}
		fmt.Print(chart)
		return nil

	default:
		return skewgram.ExportTable(os.Stdout, filtered)
	}
}

// applyFlagOverrides layers flag values over the config file. The -1
// sentinels on the numeric flags mean "keep the config value", so an
// explicit 0 is honored.
func applyFlagOverrides(cfg *config.Config) {
	if cli.MinTotal >= 0 {
		cfg.MinTotal = cli.MinTotal
	}
	if cli.Top >= 0 {
		cfg.Chart.Top = cli.Top
	}
	if cli.Encoding != "" {
		cfg.Encoding = cli.Encoding
	}
	if cli.Separator != "" {
		cfg.Separator = cli.Separator
	}
}

// readPlots reads the plots stream from the file argument, or from stdin
// when invoked in a pipe.
func readPlots() ([]byte, error) {
	if cli.Plots != "" {
		data, err := os.ReadFile(cli.Plots)
		if err != nil {
			return nil, fmt.Errorf("reading plots file: %w", err)
		}
		return data, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("checking stdin: %w", err)
	}

	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading from stdin: %w", err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("no plots input: pass a file argument or pipe the token stream")
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/hautu-waka/wakabuild/internal/config"
	"github.com/hautu-waka/wakabuild/internal/content"
	"github.com/hautu-waka/wakabuild/internal/lint"
	"github.com/hautu-waka/wakabuild/internal/metrics"
	"github.com/hautu-waka/wakabuild/internal/preview"
	"github.com/hautu-waka/wakabuild/internal/site"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"wakabuild.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Override output file path"`
	} `cmd:"" help:"Build the page from the configured record documents"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Lint struct {
		Strict bool `help:"Treat warnings as errors"`
	} `cmd:"" help:"Validate content cross-references without building"`

	Preview struct {
		Port int `short:"p" help:"HTTP port for the preview server" default:"0"`
	} `cmd:"" help:"Build, serve and rebuild the page on content changes"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if CLI.Build.Output != "" {
			cfg.Output.File = CLI.Build.Output
		}
		if err := runBuild(cfg); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := runInit(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
	case "lint":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		ok, err := runLint(cfg, CLI.Lint.Strict)
		if err != nil {
			slog.Error("Lint failed", "error", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
	case "preview":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		port := CLI.Preview.Port
		if port == 0 {
			port = cfg.Preview.Port
		}
		if err := runPreview(cfg, port); err != nil {
			slog.Error("Preview failed", "error", err)
			os.Exit(1)
		}
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(CLI.Config)
}

func runBuild(cfg *config.Config) error {
	slog.Info("Starting page build",
		"data", cfg.Data.Directory,
		"template", cfg.Template,
		"output", cfg.Output.File)
	report, err := site.Run(cfg, metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	fmt.Printf("Built: %s (%.1f KB)\n", cfg.Output.File, float64(report.OutputBytes)/1024)
	return nil
}

func runInit(configPath string, force bool) error {
	slog.Info("Initializing configuration", "path", configPath, "force", force)
	return config.Init(configPath, force)
}

// runLint runs the content-validation pass. Returns false when findings should
// fail the invocation (any error, or any warning under --strict).
func runLint(cfg *config.Config, strict bool) (bool, error) {
	recs, err := content.LoadDir(cfg.Data.Directory)
	if err != nil {
		return false, err
	}
	findings := lint.Run(recs)
	if len(findings) == 0 {
		slog.Info("Content is clean", "records", cfg.Data.Directory)
		return true, nil
	}
	failed := false
	for _, f := range findings {
		switch f.Severity {
		case lint.SeverityError:
			slog.Error(f.Message, "rule", f.Rule)
			failed = true
		default:
			slog.Warn(f.Message, "rule", f.Rule)
			if strict {
				failed = true
			}
		}
	}
	slog.Info("Lint completed", "findings", len(findings))
	return !failed, nil
}

func runPreview(cfg *config.Config, port int) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return preview.New(cfg).Run(ctx, port)
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dd0wney/storygraph/pkg/config"
	"github.com/dd0wney/storygraph/pkg/logging"
	"github.com/dd0wney/storygraph/pkg/pipeline"
	"github.com/dd0wney/storygraph/pkg/report"
)

func main() {
	nodesFile := flag.String("nodes", "", "Path to nodes file (characters, house)")
	edgesFile := flag.String("edges", "", "Path to edges file (source, target, weight)")
	configFile := flag.String("config", "", "Optional YAML analysis profile")
	topN := flag.Int("top", 0, "Override number of nodes per ranking table")
	output := flag.String("out", "", "Override path for the augmented node table export")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *nodesFile == "" || *edgesFile == "" {
		fmt.Println("Usage: storygraph --nodes nodes.csv --edges edges.csv [--config profile.yaml] [--top 10] [--out nodes_annotated.csv]")
		os.Exit(1)
	}

	logger := logging.NewDefaultLogger()
	logger.SetLevel(logging.ParseLevel(*logLevel))

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			logger.Error("failed to load config", logging.Path(*configFile), logging.Error(err))
			os.Exit(1)
		}
		cfg = loaded
	}
	if *topN > 0 {
		cfg.TopN = *topN
	}
	if *output != "" {
		cfg.Output = *output
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", logging.Error(err))
		os.Exit(1)
	}

	result, err := pipeline.Run(cfg, *nodesFile, *edgesFile, logger)
	if err != nil {
		logger.Error("analysis failed", logging.Error(err))
		os.Exit(1)
	}

	fmt.Println(report.Render(result))

	if cfg.Output != "" {
		if err := report.ExportCSV(cfg.Output, result.Nodes); err != nil {
			logger.Error("export failed", logging.Path(cfg.Output), logging.Error(err))
			os.Exit(1)
		}
		logger.Info("augmented node table written",
			logging.Path(cfg.Output),
			logging.Count(len(result.Nodes)),
		)
	}
}

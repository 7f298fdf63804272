package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dkolesni-prog/collector/internal/collector"
	"github.com/dkolesni-prog/collector/internal/config"
	"github.com/dkolesni-prog/collector/internal/logx"
)

const version = "0.1.0"

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Println("Error: " + err.Error())
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if err := logx.Initialize(cfg.LogLevel, version); err != nil {
		return err
	}
	logx.Log.Debug().Str("input", cfg.InputFile).Msg("starting url collector")

	c := collector.New()
	urls, err := c.Load(cfg.InputFile)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Loaded URLs:")
	for _, u := range urls {
		fmt.Fprintln(out, u)
	}
	fmt.Fprintln(out, "Total URLs in memory:", c.Count())
	return nil
}

// Command lvtree builds binary search trees from the command line and
// prints their traversals, shape analysis and a rendered drawing.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "lvtree",
		Usage:   "build and inspect unbalanced binary search trees",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"LVTREE_LOG_LEVEL"},
			},
		},
		Before: configureLogging,
	}
	app.Commands = []*cli.Command{
		newBuildCommand(),
		newRandomCommand(),
		newFindCommand(),
		newSuccessorCommand(),
	}

	return app
}

// configureLogging installs the default slog logger on the app's error
// writer at the level named by --log-level.
func configureLogging(cctx *cli.Context) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", cctx.String("log-level"), err)
	}
	log := slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)

	return nil
}

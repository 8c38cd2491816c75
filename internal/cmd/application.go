package cmd

import (
	"context"
	"fmt"
	"os"

	"allstars/internal/cmd/flags"
	"allstars/internal/config"
	"allstars/internal/feed"
	"allstars/internal/images"
	"allstars/internal/session"
	"allstars/internal/share"
	"allstars/ui/tui"

	"github.com/urfave/cli/v3"
)

const VERSION = "0.1.0"

var cmd = &cli.Command{
	Name:    "allstars",
	Usage:   "A terminal story feed: swipeable posts, polls and quizzes",
	Version: VERSION,
	Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
		if err := initLogger(c.String("log-level"), c.String("log-file")); err != nil {
			return ctx, err
		}
		return ctx, nil
	},
	Flags: []cli.Flag{
		flags.LogLevel,
		flags.LogFile,
		flags.Splash,
		flags.ShareEndpoint,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		cfg := config.DefaultAppConfig().
			WithSplashDelay(c.Duration("splash")).
			WithShareEndpoint(c.String("share-endpoint"))
		if err := cfg.Validate(); err != nil {
			return err
		}

		posts := feed.DefaultPosts()
		if err := feed.Validate(posts); err != nil {
			return err
		}

		return tui.Start(
			feed.NewFixtureProvider(posts),
			session.NewInMemory(),
			share.NewRelaySharer(cfg.ShareEndpoint),
			images.NewHTTPLoader(cfg.ImageTimeout),
			cfg,
		)
	},
}

func Run() {
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

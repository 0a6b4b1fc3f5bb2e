// Command trackctl exercises the tracking helpers and the GraphQL backend from a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"trackit/pkg/logger"
	"trackit/pkg/logger/zap_adapter"
)

type options struct {
	endpoint   string
	wsEndpoint string
	token      string
	timeout    time.Duration
	capacity   int
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "trackctl",
		Short:         "Package tracking toolbox",
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.endpoint, "endpoint", os.Getenv("GRAPHQL_HTTP_ENDPOINT"), "GraphQL HTTP endpoint")
	flags.StringVar(&opts.wsEndpoint, "ws-endpoint", os.Getenv("GRAPHQL_WS_ENDPOINT"), "GraphQL WebSocket endpoint")
	flags.StringVar(&opts.token, "token", os.Getenv("GRAPHQL_SERVICE_TOKEN"), "bearer token sent to the backend")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "per request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newDetectCmd(),
		newValidateCmd(),
		newProgressCmd(),
		newTrackCmd(opts),
		newWatchCmd(opts),
	)
	return root
}

// newLogger writes human-readable logs to stderr so command output stays parseable.
func newLogger(opts *options) (logger.Logger, func(), error) {
	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.WithConsole(), zap_adapter.WithDebug(opts.verbose))
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return zapLogger.With(logger.NewField("app", "trackctl")), func() { _ = zapLogger.Sync() }, nil
}

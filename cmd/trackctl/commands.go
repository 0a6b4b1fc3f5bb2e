package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"trackit/internal/entities"
	"trackit/internal/gateway/graphql"
	"trackit/internal/gateway/graphql/packages"
	"trackit/internal/gateway/graphql/subscription"
	"trackit/internal/pkg/identity"
	"trackit/internal/service/narrative"
	"trackit/internal/service/notification"
	"trackit/internal/service/progress"
	"trackit/internal/service/shipment"
	"trackit/internal/service/tracking"
)

var errEndpointRequired = errors.New("endpoint is required (--endpoint or GRAPHQL_HTTP_ENDPOINT)")

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <text>",
		Short: "Find a tracking number in free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, ok := tracking.Detect(strings.Join(args, " "))
			if !ok {
				return errors.New("no tracking number found")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", match.Number, match.Format)
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <number>",
		Short: "Check a tracking number and guess its carrier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := tracking.Validate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v.Number, v.Carrier)
			return nil
		},
	}
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <station>",
		Short: "Show the route timeline for a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			station := entities.Station(strings.ToUpper(strings.TrimSpace(args[0])))
			if !station.Valid() {
				return fmt.Errorf("unknown station %q", args[0])
			}
			printTimeline(cmd.OutOrStdout(), station)
			return nil
		},
	}
}

func newTrackCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "track <number>",
		Short: "Look up a package and describe where it is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.endpoint == "" {
				return errEndpointRequired
			}
			log, sync, err := newLogger(opts)
			if err != nil {
				return err
			}
			defer sync()

			client := graphql.NewClient(opts.endpoint, graphql.WithHTTPClient(&http.Client{Timeout: opts.timeout}))
			service := shipment.New(packages.New(client), nil, log)

			ctx := identity.WithToken(cmd.Context(), opts.token)
			pkg, err := service.GetPackageByTrackingNumber(ctx, args[0])
			switch {
			case errors.Is(err, shipment.ErrPackageNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), narrative.DescribeMissing(args[0]).Text)
				return nil
			case err != nil:
				return err
			}

			out := cmd.OutOrStdout()
			p := narrative.Describe(pkg.Status.String(), pkg.TrackingNumber, pkg.Destination)
			fmt.Fprintf(out, "[%s] %s\n\n", p.Label, p.Text)
			printTimeline(out, pkg.Station)
			return nil
		},
	}
}

func newWatchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print package updates pushed by the backend until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.wsEndpoint == "" {
				return errors.New("websocket endpoint is required (--ws-endpoint or GRAPHQL_WS_ENDPOINT)")
			}
			log, sync, err := newLogger(opts)
			if err != nil {
				return err
			}
			defer sync()

			out := cmd.OutOrStdout()
			store := notification.New(opts.capacity, nil, log)
			listener := subscription.New(subscription.Config{
				Endpoint: opts.wsEndpoint,
				Token:    opts.token,
			}, &printingStore{store: store, out: out}, log)

			if err := listener.Run(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nlast %d updates, newest first:\n", store.Capacity())
			for _, n := range store.List() {
				printNotification(out, n)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.capacity, "capacity", 20, "updates kept for the final summary")
	return cmd
}

// printingStore echoes every accepted update.
type printingStore struct {
	store *notification.Service
	out   io.Writer
}

func (p *printingStore) Add(ctx context.Context, update entities.PackageUpdate) (entities.Notification, error) {
	n, err := p.store.Add(ctx, update)
	if err != nil {
		return n, err
	}
	printNotification(p.out, n)
	return n, nil
}

func printNotification(out io.Writer, n entities.Notification) {
	fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
		n.ReceivedAt.Format(time.RFC3339), n.PackageID, n.Status, n.Station)
}

func printTimeline(out io.Writer, station entities.Station) {
	for _, step := range progress.Timeline(station) {
		mark := "[ ]"
		switch {
		case step.Current:
			mark = "[>]"
		case step.Reached:
			mark = "[x]"
		}
		fmt.Fprintf(out, "%s %s (%.4f, %.4f)\n", mark, step.Station, step.Coordinates.Lat, step.Coordinates.Lng)
	}
	fmt.Fprintf(out, "progress: %.0f%%\n", progress.Fraction(station)*100)
}

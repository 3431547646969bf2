package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/git-hulk/go-lease/document"
	"github.com/git-hulk/go-lease/lease"
	"github.com/git-hulk/go-lease/metrics"
)

type contendReport struct {
	Winner   string            `yaml:"winner"`
	Stats    lease.Stats       `yaml:"stats"`
	Document document.Document `yaml:"document"`
}

func newContendCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contend",
		Short: "Race several owners for the document lease and let the winner write",
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, err := ttlFrom(v)
			if err != nil {
				return err
			}
			return runContend(cmd.OutOrStdout(), ttl, v.GetInt("owners"), v.GetBool("metrics"))
		},
	}
	flags := cmd.Flags()
	flags.Int("owners", 8, "number of concurrent owners")
	flags.Bool("metrics", false, "print the collected metrics")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

func runContend(out io.Writer, ttl time.Duration, owners int, showMetrics bool) error {
	if owners < 1 {
		return fmt.Errorf("owners must be at least 1, got %d", owners)
	}
	reg := metrics.NewRegistry()
	collector := metrics.NewCollector("doclock")
	if err := collector.Register(reg); err != nil {
		return err
	}
	store, err := document.NewStore(lease.WithTTL(ttl), lease.WithMetrics(collector))
	if err != nil {
		return err
	}

	var winner atomic.String
	var g errgroup.Group
	for i := 0; i < owners; i++ {
		owner := lease.NewOwnerID()
		g.Go(func() error {
			err := store.Acquire(owner)
			if err == nil {
				winner.Store(owner)
				return nil
			}
			if errors.Is(err, lease.ErrAlreadyLocked) {
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := winner.Load()
	doc := store.GetContent()
	doc.Title = "Written by " + w
	updated, err := store.MutateContent(w, doc)
	if err != nil {
		return fmt.Errorf("mutate as %s: %w", w, err)
	}
	if err := writeYAML(out, contendReport{Winner: w, Stats: store.Stats(), Document: updated}); err != nil {
		return err
	}
	if showMetrics {
		return writeMetrics(out, reg)
	}
	return nil
}

func writeMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "---")
	for _, f := range families {
		for _, m := range f.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			value := m.GetCounter().GetValue()
			if m.GetGauge() != nil {
				value = m.GetGauge().GetValue()
			}
			name := f.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			fmt.Fprintf(out, "%s %g\n", name, value)
		}
	}
	return nil
}

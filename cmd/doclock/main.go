package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/git-hulk/go-lease/lease"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "doclock",
		Short:         "Exercise a lease-guarded document",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.Duration("ttl", lease.DefaultTTL, "lease duration before an unreleased lease can be reclaimed")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("DOCLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(
		newDemoCommand(v),
		newContendCommand(v),
		newVersionCommand(),
	)
	return cmd
}

func loadConfig(v *viper.Viper) error {
	path := strings.TrimSpace(v.GetString("config"))
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func ttlFrom(v *viper.Viper) (time.Duration, error) {
	ttl := v.GetDuration("ttl")
	if ttl <= 0 {
		return 0, fmt.Errorf("%w: %v", lease.ErrInvalidTTL, ttl)
	}
	return ttl, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the doclock version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "doclock %s\n", version)
			return err
		},
	}
}

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/git-hulk/go-lease/document"
	"github.com/git-hulk/go-lease/lease"
)

func newDemoCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Acquire the document lease, print it, then replace its content",
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, err := ttlFrom(v)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), ttl, v.GetString("owner"), v.GetDuration("wait"))
		},
	}
	flags := cmd.Flags()
	flags.String("owner", "John Doe", "lease owner name")
	flags.Duration("wait", 0, "time to hold the lease before mutating")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

func runDemo(out io.Writer, ttl time.Duration, owner string, wait time.Duration) error {
	store, err := document.NewStore(lease.WithTTL(ttl))
	if err != nil {
		return err
	}
	if owner == "" {
		owner = lease.NewOwnerID()
	}
	if err := store.Acquire(owner); err != nil {
		return err
	}
	fmt.Fprintf(out, "locked: %v\n", store.IsLocked())
	if err := writeYAML(out, store.GetContent()); err != nil {
		return err
	}

	if wait > 0 {
		time.Sleep(wait)
	}
	updated, err := store.MutateContent(owner, document.Document{
		Title:  "New Document",
		Body:   "This is a new document",
		Footer: "End of new document",
	})
	if err != nil {
		return fmt.Errorf("mutate as %s: %w", owner, err)
	}
	fmt.Fprintf(out, "locked: %v\n", store.IsLocked())
	return writeYAML(out, updated)
}

func writeYAML(out io.Writer, v interface{}) error {
	fmt.Fprintln(out, "---")
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

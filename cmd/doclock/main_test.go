package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/git-hulk/go-lease/document"
	"github.com/git-hulk/go-lease/lease"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "doclock dev\n", out)
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo", "--owner", "John Doe")
	require.NoError(t, err)
	require.Contains(t, out, "locked: true")
	require.Contains(t, out, "title: Document")
	require.Contains(t, out, "locked: false")
	require.Contains(t, out, "title: New Document")
}

func TestDemoLeaseExpires(t *testing.T) {
	var out bytes.Buffer
	err := runDemo(&out, 10*time.Millisecond, "John Doe", 30*time.Millisecond)
	require.ErrorIs(t, err, lease.ErrUnauthorized)
}

func TestInvalidTTL(t *testing.T) {
	_, err := execute(t, "demo", "--ttl", "0s")
	require.ErrorIs(t, err, lease.ErrInvalidTTL)
}

func TestTTLFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doclock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ttl: -1s\n"), 0o600))
	_, err := execute(t, "demo", "--config", path)
	require.ErrorIs(t, err, lease.ErrInvalidTTL)
}

func TestContend(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runContend(&out, time.Minute, 16, true))

	docs := bytes.SplitN(out.Bytes(), []byte("---\n"), 3)
	require.Len(t, docs, 3)
	var report contendReport
	require.NoError(t, yaml.Unmarshal(docs[1], &report))
	require.NotEmpty(t, report.Winner)
	require.Equal(t, "Written by "+report.Winner, report.Document.Title)
	require.Equal(t, document.Default().Body, report.Document.Body)
	require.Equal(t, int64(1), report.Stats.Acquired)
	require.Equal(t, int64(15), report.Stats.Contended)
	require.Equal(t, int64(1), report.Stats.Mutated)

	require.Contains(t, string(docs[2]), `doclock_lease_acquire_total{result="ok"} 1`)
	require.Contains(t, string(docs[2]), `doclock_lease_acquire_total{result="denied"} 15`)
	require.Contains(t, string(docs[2]), "doclock_lease_locked 0")
}

func TestContendRejectsZeroOwners(t *testing.T) {
	_, err := execute(t, "contend", "--owners", "0")
	require.Error(t, err)
}

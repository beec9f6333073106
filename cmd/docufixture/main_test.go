package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/docufixture/internal/config"
	"pkg.jsn.cam/docufixture/pkg/fixture"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvEdgeCount, config.EnvOutputDir, config.EnvSeed, config.EnvLedger} {
		t.Setenv(k, "")
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateVerifyHistory(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := filepath.Join(dir, "state", "runs.db")

	out, err := execute(t, "generate", "--edges", "40", "--output", dir, "--seed", "17", "--ledger", ledgerPath)
	require.NoError(t, err)
	assert.Contains(t, out, "seed 17")
	assert.Contains(t, out, filepath.Join(dir, "40_edge_tree_objects.csv"))
	assert.Contains(t, out, "40 edges")

	out, err = execute(t, "verify", "--edges", "40", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Fixtures OK")

	out, err = execute(t, "history", "--ledger", ledgerPath)
	require.NoError(t, err)
	assert.Contains(t, out, "RUN ID")
	assert.Contains(t, out, "17")
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	_, err := execute(t, "generate", "-n", "200", "-o", dirA, "--seed", "9", "--progress=false")
	require.NoError(t, err)
	_, err = execute(t, "generate", "-n", "200", "-o", dirB, "--seed", "9", "--progress=false")
	require.NoError(t, err)

	for _, name := range []string{fixture.TreeObjectsFilename(200), fixture.FileResourcesFilename(200)} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
}

func TestGenerate_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "generate", "-n", "5", "-o", dir, "--seed", "1")
	require.NoError(t, err)

	_, err = execute(t, "generate", "-n", "5", "-o", dir, "--seed", "2")
	assert.ErrorIs(t, err, fixture.ErrFileExists)
}

func TestGenerate_NegativeEdges(t *testing.T) {
	_, err := execute(t, "generate", "--edges=-3", "-o", t.TempDir())
	assert.ErrorIs(t, err, config.ErrNegativeEdgeCount)
}

func TestGenerate_FromConfigFile(t *testing.T) {
	dir := t.TempDir()
	seed := uint64(3)
	cfg := config.Default()
	cfg.EdgeCount = 12
	cfg.OutputDir = dir
	cfg.Seed = &seed
	cfg.Progress = false
	cfgPath := filepath.Join(dir, "docufixture.yaml")
	require.NoError(t, cfg.Save(cfgPath))

	out, err := execute(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "seed 3")

	_, err = execute(t, "verify", "--config", cfgPath)
	assert.NoError(t, err)
}

func TestVerify_MissingFixtures(t *testing.T) {
	_, err := execute(t, "verify", "-n", "10", "-d", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHistory_NoLedger(t *testing.T) {
	_, err := execute(t, "history")
	assert.ErrorIs(t, err, errNoLedger)
}

func TestHistory_Empty(t *testing.T) {
	out, err := execute(t, "history", "--ledger", filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded")
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("warn", false)
	assert.NoError(t, err)

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
meet:
  name: "Ocean Tendie Invitational"
  date: "May 13, 2025"
  location: "Gesling Stadium"
  host: "Carnegie Mellon University"
  start_time: "18:00"
  gap_minutes: 3
teams:
  - key: one
    name: "Dutty's Tuddies"
  - key: two
    name: "Leland's Lollipops"
athletes:
  - name: "Sean Dutton"
    team: one
    aliases: ["sean"]
  - name: "Greg Kossuth"
    team: two
    aliases: ["greg"]
events:
  - name: "Blind Walk"
    duration_minutes: 7
    kind: track
    max_heat_size: 8
    mean: 30
    std_dev: 5
  - name: "Frisbee Put"
    duration_minutes: 15
    kind: field
    max_heat_size: 20
    mean: 3
    std_dev: 1
`

const testEntriesCSV = `Name,List of events
sean,"Blind Walk, Frisbee Put"
greg,Blind Walk
`

func writeFixtures(t *testing.T) (configPath, entriesPath, outPath string) {
	t.Helper()
	dir := t.TempDir()
	configPath = filepath.Join(dir, "meet.yaml")
	entriesPath = filepath.Join(dir, "entries.csv")
	outPath = filepath.Join(dir, "heat_sheet.tex")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfigYAML), 0644))
	require.NoError(t, os.WriteFile(entriesPath, []byte(testEntriesCSV), 0644))
	return
}

func TestRunGenerate_WritesDocument(t *testing.T) {
	configPath, entriesPath, outPath := writeFixtures(t)

	require.NoError(t, runGenerate(configPath, entriesPath, outPath, 42))

	doc, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `\textbf{Ocean Tendie Invitational}`)
	assert.Contains(t, string(doc), "Blind Walk & 6:00 PM")
	assert.Contains(t, string(doc), "Frisbee Put & 6:10 PM")
	assert.Contains(t, string(doc), "Sean Dutton")
}

func TestRunGenerate_SameSeedSameDocument(t *testing.T) {
	configPath, entriesPath, outPath := writeFixtures(t)

	require.NoError(t, runGenerate(configPath, entriesPath, outPath, 42))
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)

	require.NoError(t, runGenerate(configPath, entriesPath, outPath, 42))
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRunGenerate_InvalidConfig_NoOutputWritten(t *testing.T) {
	configPath, entriesPath, outPath := writeFixtures(t)
	require.NoError(t, os.WriteFile(configPath, []byte("meet:\n  start_time: nonsense\n"), 0644))

	require.Error(t, runGenerate(configPath, entriesPath, outPath, 42))
	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err), "no partial document on fatal error")
}

package slot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().MaxWinMultiple, cfg.MaxWinMultiple)
}

func TestLoadConfigOverlaysOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	yaml := `
max_win_multiple: 5000
scatter_award:
  "3": 3
  "4": 12
  "5": 30
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 5000.0, cfg.MaxWinMultiple)
	require.Equal(t, 3.0, cfg.ScatterAward[3])
	require.Equal(t, 12.0, cfg.ScatterAward[4])

	def := DefaultConfig()
	require.Equal(t, def.PayoutMultiple(SymbolLady, 5), cfg.PayoutMultiple(SymbolLady, 5), "paytable untouched by override must match the default")
}

func TestLoadConfigRejectsMalformedPayTableRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	yaml := `
paytable:
  LADY: [1, 2, 3]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigRejectsUnreadableFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigRejectsUnrecognizedSymbolInWeightOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	yaml := `
base_game_weights:
  PURPLE: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/bootstrap"
	"github.com/jhoicas/gestfinance-api/internal/cli"
	"github.com/jhoicas/gestfinance-api/pkg/config"
)

// fileOpener abre siempre la misma base sqlite para que varios comandos compartan datos.
func fileOpener(t *testing.T) (cli.Opener, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		App:    config.AppConfig{Name: "gestfinance-test"},
		Store:  config.StoreConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(dir, "test.db")},
		Backup: config.BackupConfig{Dir: filepath.Join(dir, "backups")},
	}
	return func(ctx context.Context) (*bootstrap.App, error) {
		return bootstrap.New(ctx, cfg, nil)
	}, dir
}

func run(t *testing.T, open cli.Opener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cli.Execute(context.Background(), open, args, &out)
	return out.String(), err
}

func TestVersion_MuestraVersion(t *testing.T) {
	out, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gestfinance dev")
}

func TestBackup_ExportarEImportar(t *testing.T) {
	open, dir := fileOpener(t)

	app, err := open(context.Background())
	require.NoError(t, err)
	_, err = app.Products.Create(context.Background(), dto.CreateProductRequest{
		Name: "Feijão", PurchaseDate: "2024-01-02",
		PurchasedQty: d("2"), UnitPrice: d("9.90"),
	})
	require.NoError(t, err)
	app.Close()

	out, err := run(t, open, "backup", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "backup guardado en")

	files, err := filepath.Glob(filepath.Join(dir, "backups", "gestfinance-backup-*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	raw, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"valorUnitario": 9.9`)
	assert.Contains(t, string(raw), `"quantidadeComprada": 2`)
	assert.NotContains(t, string(raw), `"valorTotal": "`)

	out, err = run(t, open, "backup", "import", files[0])
	require.NoError(t, err)
	assert.Contains(t, out, "1 productos")
}

func TestBackupImport_ArchivoInvalido(t *testing.T) {
	open, dir := fileOpener(t)
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"produtos": []}`), 0o600))

	_, err := run(t, open, "backup", "import", bad)
	assert.Error(t, err)
}

func TestProducts_Recompute(t *testing.T) {
	open, _ := fileOpener(t)
	out, err := run(t, open, "products", "recompute")
	require.NoError(t, err)
	assert.Contains(t, out, "0 productos actualizados")
}

func TestReport_PDF(t *testing.T) {
	open, dir := fileOpener(t)
	target := filepath.Join(dir, "fluxo.pdf")

	_, err := run(t, open, "report", "pdf", "--from", "2024-01-01", "--to", "2024-12-31", "-o", target)
	require.NoError(t, err)
	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))

	_, err = run(t, open, "report", "pdf", "--from", "31/12/2024")
	assert.Error(t, err)
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

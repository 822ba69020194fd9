// Package backupfile guarda y lee documentos de backup en disco.
package backupfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/gestfinance-api/internal/application/backup"
)

// FileName nombre del archivo de backup del día, ej: gestfinance-backup-2024-05-01.json.
func FileName(t time.Time) string {
	return fmt.Sprintf("gestfinance-backup-%s.json", t.Format(time.DateOnly))
}

// Save escribe data en dir con el nombre del día y devuelve la ruta.
// Un backup del mismo día se sobrescribe.
func Save(dir string, data *backup.Data, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de backups: %w", err)
	}
	path := filepath.Join(dir, FileName(now))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("crear archivo de backup: %w", err)
	}
	if err := backup.Encode(f, data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("cerrar archivo de backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("renombrar archivo de backup: %w", err)
	}
	return path, nil
}

// Load lee y valida un archivo de backup.
func Load(path string) (*backup.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir backup: %w", err)
	}
	defer f.Close()
	return backup.Decode(f)
}

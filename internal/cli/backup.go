package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestfinance-api/internal/infrastructure/backupfile"
)

func newBackupCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Exportar o restaurar copias de seguridad",
	}

	var dir string
	export := withStore(s, &cobra.Command{
		Use:   "export",
		Short: "Guarda un backup completo en gestfinance-backup-AAAA-MM-DD.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = s.app.Config.Backup.Dir
			}
			data, err := s.app.Backup.Export(cmd.Context())
			if err != nil {
				return err
			}
			path, err := backupfile.Save(dir, data, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backup guardado en %s\n", path)
			return nil
		},
	})
	export.Flags().StringVarP(&dir, "dir", "d", "", "Directorio destino (por defecto BACKUP_DIR)")

	imp := withStore(s, &cobra.Command{
		Use:   "import <archivo>",
		Short: "Reemplaza todo el contenido con el de un backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := backupfile.Load(args[0])
			if err != nil {
				return err
			}
			sum, err := s.app.Backup.Import(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"backup restaurado: %d transacciones, %d productos, %d salidas (fecha %s)\n",
				sum.Transactions, sum.Products, sum.Movements, sum.BackupDate)
			return nil
		},
	})

	cmd.AddCommand(export, imp)
	return cmd
}

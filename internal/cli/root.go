// Package cli implementa la línea de comandos offline gestfinance sobre los mismos casos de uso de la API.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/jhoicas/gestfinance-api/internal/bootstrap"
)

// Version se sobrescribe con -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// Opener abre el grafo de casos de uso. En producción carga config y almacén; en tests, un sqlite en memoria.
type Opener func(ctx context.Context) (*bootstrap.App, error)

// session mantiene la App abierta durante la ejecución de un comando.
type session struct {
	open Opener
	app  *bootstrap.App
}

func (s *session) start(cmd *cobra.Command, _ []string) error {
	app, err := s.open(cmd.Context())
	if err != nil {
		return err
	}
	s.app = app
	return nil
}

func (s *session) close(*cobra.Command, []string) {
	if s.app != nil {
		s.app.Close()
		s.app = nil
	}
}

// Execute ejecuta la CLI con args y cierra el almacén aunque el comando falle.
func Execute(ctx context.Context, open Opener, args []string, out io.Writer) error {
	s := &session{open: open}
	defer s.close(nil, nil)

	root := newRootCmd(s)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(ctx)
}

func newRootCmd(s *session) *cobra.Command {

	root := &cobra.Command{
		Use:           "gestfinance",
		Short:         "Gestión de caja e inventario (backups, reportes y mantenimiento)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), figure.NewFigure("GestFinance", "", true).String())
			return cmd.Help()
		},
	}

	root.AddCommand(
		newBackupCmd(s),
		newReportCmd(s),
		newProductsCmd(s),
		newVersionCmd(),
	)
	return root
}

// withStore marca un comando como dependiente del almacén.
func withStore(s *session, cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = s.start
	cmd.PostRun = s.close
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gestfinance %s\n", Version)
		},
	}
}

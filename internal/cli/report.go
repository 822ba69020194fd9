package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
)

func newReportCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reportes",
	}

	var (
		f   dto.CashFlowFilter
		out string
	)
	pdf := withStore(s, &cobra.Command{
		Use:   "pdf",
		Short: "Genera el reporte de fluxo de caixa en PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := s.app.Reports.CashFlowPDF(cmd.Context(), f)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("fluxo-de-caixa-%s.pdf", time.Now().Format("2006-01-02"))
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reporte guardado en %s\n", out)
			return nil
		},
	})
	pdf.Flags().StringVar(&f.From, "from", "", "Desde (AAAA-MM-DD)")
	pdf.Flags().StringVar(&f.To, "to", "", "Hasta (AAAA-MM-DD)")
	pdf.Flags().StringVar(&f.Category, "category", "", "Crédito | Débito | Crédito/Débito")
	pdf.Flags().StringVar(&f.Store, "store", "", "Loja o todas")
	pdf.Flags().StringVarP(&out, "out", "o", "", "Archivo de salida")

	cmd.AddCommand(pdf)
	return cmd
}

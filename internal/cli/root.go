// Package cli define los comandos del cliente de terminal.
package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/omsayari/sayari-api/internal/domain/entity"
	"github.com/omsayari/sayari-api/internal/tui"
)

// NewRootCmd arma el comando raíz: sin subcomando lanza la TUI.
func NewRootCmd() *cobra.Command {
	var serverURL string
	var password string
	var category string

	root := &cobra.Command{
		Use:   "sayari",
		Short: "Cliente de terminal para la API de items",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := entity.Category(category)
			if !cat.IsValid() {
				return fmt.Errorf("categoría inválida: %q (válidas: flirting, sayari, mix)", category)
			}
			client := tui.NewClient(serverURL, password)
			p := tea.NewProgram(tui.NewModel(client, cat), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", envOr("SAYARI_SERVER", "http://localhost:3000"), "URL base del servidor")
	root.PersistentFlags().StringVar(&password, "password", envOr("ADMIN_PASSWORD", ""), "secreto de administración para editar/eliminar")
	root.Flags().StringVar(&category, "category", "flirting", "categoría inicial")

	root.AddCommand(newExportCmd(&serverURL, &password))
	return root
}

// newExportCmd `sayari export <categoría>`: imprime el reporte de texto en stdout.
func newExportCmd(serverURL, password *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <categoría>",
		Short: "Imprime el reporte de exportación de una categoría",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := entity.Category(args[0])
			if !cat.IsValid() {
				return fmt.Errorf("categoría inválida: %q", args[0])
			}
			client := tui.NewClient(*serverURL, *password)
			text, err := client.ExportText(context.Background(), cat)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"association-console/internal/entities"
	"association-console/internal/repositories"
	"association-console/internal/services"
	"association-console/pkg/utils"
)

var (
	donsNature string
	donsSearch string
	donsStatus string
	donsFrom   string
	donsTo     string
	donsOut    string
)

var donsCmd = &cobra.Command{
	Use:   "dons",
	Short: "Gifts, testaments and donations",
}

var donsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered dons to an XLSX file",
	RunE:  runDonsExport,
}

func init() {
	donsExportCmd.Flags().StringVar(&donsNature, "nature", "", "gift, testament or donation (default: all)")
	donsExportCmd.Flags().StringVar(&donsSearch, "search", "", "Free text filter")
	donsExportCmd.Flags().StringVar(&donsStatus, "status", "", "Status filter")
	donsExportCmd.Flags().StringVar(&donsFrom, "from", "", "Entry date lower bound (YYYY-MM-DD)")
	donsExportCmd.Flags().StringVar(&donsTo, "to", "", "Entry date upper bound (YYYY-MM-DD)")
	donsExportCmd.Flags().StringVarP(&donsOut, "out", "o", "", "Output file (default: dons_<date>.xlsx)")
	donsCmd.AddCommand(donsExportCmd)
}

func runDonsExport(cmd *cobra.Command, args []string) error {
	if donsNature != "" && !slices.Contains(entities.Natures, donsNature) {
		return fmt.Errorf("unknown nature %q", donsNature)
	}
	q, err := utils.ParseListQuery(url.Values{
		"search":    {donsSearch},
		"status":    {donsStatus},
		"date_from": {donsFrom},
		"date_to":   {donsTo},
	}, entities.DonSearchFields)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	svc := services.NewDonService(repositories.NewDonRepository(client), nil, logger)
	dons, err := svc.FilteredDons(ctx, donsNature, q)
	if err != nil {
		return fmt.Errorf("fetch dons: %w", err)
	}

	out := donsOut
	if out == "" {
		out = services.ReportFileName("dons")
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := services.WriteXLSX(f, services.DonsReport(donsNature, dons)); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	return printYAML(cmd.OutOrStdout(), map[string]interface{}{"file": out, "rows": len(dons)})
}

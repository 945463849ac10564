package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"association-console/internal/dto"
	"association-console/internal/repositories"
	"association-console/internal/services"
	"association-console/pkg/validation"
)

var equipmentForm dto.CreateEquipmentDTO

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "Medical equipment",
}

var equipmentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create one or more identical items",
	Long: `Create --quantity identical items, one request at a time with the
configured BATCH_DELAY between requests. A failed item does not stop the batch;
the report lists every failure by index.`,
	RunE: runEquipmentAdd,
}

func init() {
	f := equipmentAddCmd.Flags()
	f.IntVarP(&equipmentForm.Quantity, "quantity", "n", 1, "Number of items")
	f.StringVar(&equipmentForm.Category, "category", "", "Category (required)")
	f.StringVar(&equipmentForm.Reference, "reference", "", "Reference")
	f.StringVar(&equipmentForm.Brand, "brand", "", "Brand")
	f.StringVar(&equipmentForm.Source, "source", "", "Source (required)")
	f.StringVar(&equipmentForm.Usage, "usage", "", "Usage")
	f.StringVar(&equipmentForm.Status, "status", "", "Status (required)")
	f.StringVar(&equipmentForm.AcquisitionType, "acquisition-type", "", "Acquisition type (required)")
	f.Float64Var(&equipmentForm.MonetaryValue, "value", 0, "Monetary value of one item")
	equipmentCmd.AddCommand(equipmentAddCmd)
}

func runEquipmentAdd(cmd *cobra.Command, args []string) error {
	if err := validation.New().Validate(&equipmentForm); err != nil {
		if fields := validation.FieldErrors(err); fields != nil {
			_ = printYAML(cmd.ErrOrStderr(), map[string]interface{}{"fields": fields})
		}
		return fmt.Errorf("invalid equipment: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	svc := services.NewEquipmentService(repositories.NewEquipmentRepository(client), cfg.Batch, nil, logger)
	result, err := svc.CreateBatch(ctx, equipmentForm)
	if err != nil {
		return err
	}
	if err := printYAML(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if result.Succeeded == 0 {
		return fmt.Errorf("no item created")
	}
	return nil
}

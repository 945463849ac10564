package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"association-console/internal/dto"
	"association-console/internal/repositories"
	"association-console/internal/services"
	"association-console/pkg/listing"
	"association-console/pkg/types"
)

var (
	dispatchesView       string
	dispatchesReturnDate string
)

var dispatchesCmd = &cobra.Command{
	Use:   "dispatches",
	Short: "Equipment loans",
}

var dispatchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loans of a view",
	RunE:  runDispatchesList,
}

var dispatchesReturnCmd = &cobra.Command{
	Use:   "return <dispatch-id>",
	Short: "Mark a loan as returned",
	Args:  cobra.ExactArgs(1),
	RunE:  runDispatchesReturn,
}

func init() {
	dispatchesListCmd.Flags().StringVar(&dispatchesView, "view", dto.ViewOngoing, "ongoing, completed or all")
	dispatchesReturnCmd.Flags().StringVar(&dispatchesReturnDate, "date", "", "Return date YYYY-MM-DD (default: today)")
	dispatchesCmd.AddCommand(dispatchesListCmd)
	dispatchesCmd.AddCommand(dispatchesReturnCmd)
}

func newDispatchService() *services.DispatchService {
	return services.NewDispatchService(repositories.NewDispatchRepository(client), nil, logger)
}

func runDispatchesList(cmd *cobra.Command, args []string) error {
	switch dispatchesView {
	case dto.ViewOngoing, dto.ViewCompleted, dto.ViewAll:
	default:
		return fmt.Errorf("unknown view %q", dispatchesView)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	dispatches, err := newDispatchService().FilteredDispatches(ctx, dispatchesView, listing.Query{})
	if err != nil {
		return err
	}
	return printYAML(cmd.OutOrStdout(), dispatches)
}

func runDispatchesReturn(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid dispatch id %q", args[0])
	}
	returnDate, err := types.ParseDate(dispatchesReturnDate)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	dispatch, err := newDispatchService().ReturnDispatch(ctx, id, returnDate)
	if err != nil {
		return err
	}
	return printYAML(cmd.OutOrStdout(), dispatch)
}

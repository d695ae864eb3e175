package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func defaultsCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the effective engine configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			c := st.cfg
			fmt.Fprintf(w, "distance threshold: %v px\n", c.DistanceThreshold)
			fmt.Fprintf(w, "velocity threshold: %v px/ms\n", c.VelocityThreshold)
			fmt.Fprintf(w, "long press:         %v\n", c.LongPressDuration)
			fmt.Fprintf(w, "pinch:              %v\n", c.EnablePinch)
			fmt.Fprintf(w, "rotation:           %v\n", c.EnableRotation)
			fmt.Fprintf(w, "prevent scroll:     %v\n", c.PreventScroll)
			return nil
		},
	}
}

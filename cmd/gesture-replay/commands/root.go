package commands

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/gesture"
)

// rootState is shared by every subcommand of one invocation.
type rootState struct {
	flags   configFlags
	verbose bool
	cfg     gesture.Config
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	st := &rootState{}
	root := &cobra.Command{
		Use:           "gesture-replay",
		Short:         "Replay touch gesture scripts through the recognizer",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			st.flags.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			st.cfg = cfg
			return nil
		},
	}

	st.flags.register(root)
	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "trace every event to stderr")

	root.AddCommand(replayCmd(st), defaultsCmd(st))
	return root
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// snapshotCommand fetches every collection once and reports record counts.
func (c *CLI) snapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch all master data collections and print their sizes",
		Long: `Fetch cards, characters, music and events from the master data mirror
and print how many records each holds. Useful to check that the configured
mirror is reachable before starting a server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a := newApp(c.cfg, loggerFromContext(ctx))

			out := cmd.OutOrStdout()
			printInfo(out, "Fetching master data from %s", StyleLink.Render(c.cfg.MasterDataURL))

			spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Downloading collections...")
			spinner.Start()
			prog := startProgress(loggerFromContext(ctx), "snapshot")
			err := a.store.Warm(ctx)
			switch {
			case spinner.Cancelled():
				spinner.Fail("Cancelled")
				return ctx.Err()
			case err != nil:
				spinner.Fail("Fetch failed")
			default:
				spinner.Succeed("Snapshot loaded")
				prog.done("loaded master data snapshot")
			}

			for _, st := range a.store.Status() {
				value := StyleDim.Render("not loaded")
				if st.Loaded {
					value = StyleNumber.Render(fmt.Sprintf("%d", st.Records))
				}
				printKeyValue(out, st.Name, value)
			}
			return err
		},
	}
}

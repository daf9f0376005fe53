package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/listenupapp/luckysign/internal/mdns"
)

func discoverCmd() *cobra.Command {
	var timeout time.Duration

	c := &cobra.Command{
		Use:   "discover",
		Short: "Find Lucky Sign servers on the local network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			peers, err := mdns.Discover(cmd.Context(), timeout)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(peers) == 0 {
				fmt.Fprintln(w, "No servers found")
				return nil
			}
			for _, p := range peers {
				fmt.Fprintf(w, "%s  %s  v%s  %s\n", p.Name, p.URL(), p.Version, p.ID)
			}
			return nil
		},
	}

	c.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "How long to listen for answers")
	return c
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tubegrab release version.
const Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tubegrab version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tubegrab " + Version)
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/libimobiledevice/go-irecovery/pkg/usb/irecv"
	"github.com/spf13/cobra"
)

func init() {
	setenvCmd.Flags().Bool("save", false, "persist with saveenv after setting")
	rootCmd.AddCommand(setenvCmd)
}

// setenvCmd represents the setenv command
var setenvCmd = &cobra.Command{
	Use:           "setenv <VAR> <VALUE>",
	Short:         "Set an iBoot environment variable",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ecid, err := ecidFlag()
		if err != nil {
			return fmt.Errorf("parse --ecid: %w", err)
		}

		c, err := irecv.Open(ecid)
		if err != nil {
			return fmt.Errorf("open device: %w", err)
		}
		defer c.Close()

		if err := c.Setenv(args[0], args[1]); err != nil {
			return fmt.Errorf("setenv %s: %w", args[0], err)
		}

		save, _ := cmd.Flags().GetBool("save")
		if save {
			if err := c.Saveenv(); err != nil {
				return fmt.Errorf("saveenv: %w", err)
			}
		}
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/libimobiledevice/go-irecovery/pkg/usb/irecv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getenvCmd)
}

// getenvCmd represents the getenv command
var getenvCmd = &cobra.Command{
	Use:           "getenv <VAR>",
	Short:         "Read an iBoot environment variable",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ExactArgs(1),
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

		val, err := c.Getenv(args[0])
		if err != nil {
			return fmt.Errorf("getenv %s: %w", args[0], err)
		}
		fmt.Println(val)
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/libimobiledevice/go-irecovery/pkg/usb/irecv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebootCmd)
}

// rebootCmd represents the reboot command
var rebootCmd = &cobra.Command{
	Use:           "reboot",
	Short:         "Send the reboot command to the device",
	SilenceUsage:  true,
	SilenceErrors: true,
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

		return c.Reboot()
	},
}

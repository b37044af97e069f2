package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/libimobiledevice/go-irecovery/pkg/usb/irecv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:           "open",
	Short:         "Open the attached device and print its identity",
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

		info := c.DeviceInfo()
		log.WithField("mode", c.Mode()).Info("connected")
		fmt.Printf("ECID: %016X\n", info.ECID)
		if info.SRNM != "" {
			fmt.Printf("SRNM: %s\n", info.SRNM)
		}
		if d, ok := irecv.LookupByClient(deref(info.CPID), deref(info.BDID), c.Mode()); ok {
			fmt.Printf("Device: %s (%s)\n", d.DisplayName, d.ProductType)
		}
		return nil
	},
}

func deref(p *uint32) uint32 {
	if p == nil {
		return 0
	}
	return *p
}

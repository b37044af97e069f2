package cmd

import (
	"fmt"

	"github.com/libimobiledevice/go-irecovery/pkg/usb/irecv"
	"github.com/spf13/cobra"
)

func init() {
	devicesCmd.Flags().Bool("dump", false, "print the full device database instead of looking up one query")
	rootCmd.AddCommand(devicesCmd)
}

// devicesCmd represents the devices command
var devicesCmd = &cobra.Command{
	Use:           "devices [QUERY]",
	Short:         "Look up a device by product type or hardware model, or dump the whole database",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dump, _ := cmd.Flags().GetBool("dump"); dump {
			for _, d := range irecv.AllDevices() {
				fmt.Println(d)
			}
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("either pass a QUERY or use --dump")
		}
		query := args[0]

		if d, ok := irecv.LookupByProductType(query); ok {
			fmt.Println(d)
			return nil
		}
		if d, ok := irecv.LookupByHardwareModel(query); ok {
			fmt.Println(d)
			return nil
		}
		return fmt.Errorf("no device matches %q", query)
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/libimobiledevice/go-irecovery/pkg/usb/irecv"
	"github.com/spf13/cobra"
)

func init() {
	uploadCmd.Flags().Bool("notify-finish", true, "send the DFU finish-notify sequence after the last packet")
	uploadCmd.Flags().Bool("force-zlp", false, "force a zero-length packet after the finish notify")
	uploadCmd.Flags().Bool("small-pkt", false, "use 0x40-byte DFU packets with no CRC trailer")
	rootCmd.AddCommand(uploadCmd)
}

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:           "upload <FILE>",
	Short:         "Upload a firmware image to the device",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ecid, err := ecidFlag()
		if err != nil {
			return fmt.Errorf("parse --ecid: %w", err)
		}

		var options int
		if v, _ := cmd.Flags().GetBool("notify-finish"); v {
			options |= irecv.DFUNotifyFinish
		}
		if v, _ := cmd.Flags().GetBool("force-zlp"); v {
			options |= irecv.DFUForceZLP
		}
		if v, _ := cmd.Flags().GetBool("small-pkt"); v {
			options |= irecv.DFUSmallPkt
		}

		c, err := irecv.Open(ecid)
		if err != nil {
			return fmt.Errorf("open device: %w", err)
		}
		defer c.Close()

		c.SetCallbacks(irecv.Callbacks{
			Progress: func(c *irecv.Client, percent int) {
				log.Infof("uploading... %d%%", percent)
			},
		})

		path := args[0]
		if fi, statErr := os.Stat(path); statErr == nil {
			log.WithField("size", humanize.Bytes(uint64(fi.Size()))).Info("sending buffer")
		}
		if err := c.SendFile(path, options); err != nil {
			return fmt.Errorf("send %s: %w", path, err)
		}
		log.Info("upload complete")
		return nil
	},
}

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/libimobiledevice/go-irecovery/pkg/usb/irecv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:           "watch",
	Short:         "Print ADD/REMOVE events as devices enter and leave a recognized boot mode",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		handle, err := irecv.DeviceEventSubscribe(func(ev irecv.DeviceEvent) {
			switch ev.Type {
			case irecv.EventConnected:
				fmt.Printf("ADD    %-8s %s\n", ev.Mode, ev.Location)
			case irecv.EventDisconnected:
				fmt.Printf("REMOVE %-8s %s\n", ev.Mode, ev.Location)
			}
		})
		if err != nil {
			return fmt.Errorf("subscribe to hot-plug events: %w", err)
		}
		defer irecv.DeviceEventUnsubscribe(handle)

		log.Info("watching for devices, press Ctrl-C to stop")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		return nil
	},
}

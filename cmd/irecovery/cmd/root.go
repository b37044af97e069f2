package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is the base command when irecovery is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "irecovery",
	Short: "Talk to an Apple device sitting in DFU, WTF, Recovery or KIS mode",
}

// Execute adds all child commands to rootCmd and runs it. Called once by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	log.SetHandler(clihandler.Default)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/irecovery/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().String("ecid", "", "match a device by ECID (hex, without 0x)")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("ecid", rootCmd.PersistentFlags().Lookup("ecid"))

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

func initConfig() {
	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(home, ".config", "irecovery"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("irecovery")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ecidFlag parses the --ecid flag as hex, returning 0 (any device) when unset.
func ecidFlag() (uint64, error) {
	s := viper.GetString("ecid")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 16, 64)
}

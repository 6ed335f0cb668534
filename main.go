package main

import (
	"log"
	"os"

	"github.com/madverse/madverse/pkg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	initConfig()

	rootCmd := &cobra.Command{
		Use:   "madverse",
		Short: "Mad Libs Story Generator",
	}

	cmd, err := pkg.NewCommand()
	if err != nil {
		log.Fatalln(err)
	}
	rootCmd.AddCommand(
		cmd,
	)

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetConfigName("app") // Name of the config file (without extension)
	viper.SetConfigType("env") // Type of the config file

	// Look in the current directory first, then fall back to home.
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err != nil {
		log.Println("Error getting user home directory:", err)
		return
	}
	viper.AddConfigPath(home)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found in current directory or home directory")
		} else {
			log.Println("Error reading config file:", err)
		}
		return
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/nautilus/astwalk"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "astwalk",
	Short: "astwalk lists the fields and directives of a GraphQL query document.",
}

var log astwalk.Logger = &astwalk.DefaultLogger{}

// start the astwalk executable
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

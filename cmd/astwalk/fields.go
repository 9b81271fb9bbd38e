package main

import (
	"fmt"

	"github.com/nautilus/astwalk"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields <query file>",
	Short: "List every field in the query, in document order",
	Args:  cobra.ExactArgs(1),
	Run:   ListFields,
}

func init() {
	// add the fields command to the root executable
	rootCmd.AddCommand(fieldsCmd)
}

// ListFields prints the name of every field in the document
func ListFields(cmd *cobra.Command, args []string) {
	document := loadDocument(args[0])

	// print each field as the iterator finds it
	iter := astwalk.DocumentFieldsOf(document)
	for field := iter.Next(); field != nil; field = iter.Next() {
		fmt.Println(field.Name)
	}
}

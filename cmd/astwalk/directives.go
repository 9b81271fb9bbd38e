package main

import (
	"fmt"

	"github.com/nautilus/astwalk"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/ast"
)

var directivesCmd = &cobra.Command{
	Use:   "directives <query file>",
	Short: "List every directive in the query, in document order",
	Args:  cobra.ExactArgs(1),
	Run:   ListDirectives,
}

func init() {
	// add the directives command to the root executable
	rootCmd.AddCommand(directivesCmd)
}

// ListDirectives prints every directive attached to a selection in the document
func ListDirectives(cmd *cobra.Command, args []string) {
	document := loadDocument(args[0])

	// walk the body of every definition in the document
	for _, operation := range document.Operations {
		log.SelectionSet(operation.SelectionSet)
		printDirectives(operation.SelectionSet)
	}
	for _, fragment := range document.Fragments {
		log.SelectionSet(fragment.SelectionSet)
		printDirectives(fragment.SelectionSet)
	}
}

func printDirectives(selectionSet ast.SelectionSet) {
	iter := astwalk.DirectivesOf(selectionSet)
	for directive := iter.Next(); directive != nil; directive = iter.Next() {
		fmt.Println("@" + directive.Name)
	}
}

package main

import (
	"io/ioutil"
	"os"

	"github.com/vektah/gqlparser/ast"
	"github.com/vektah/gqlparser/parser"
)

// loadDocument reads the query at the given path and parses it
func loadDocument(path string) *ast.QueryDocument {
	// read the full query
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		log.Warn(err)
		os.Exit(1)
	}

	// parse the query into a document
	document, parseErr := parser.ParseQuery(&ast.Source{
		Name:  path,
		Input: string(contents),
	})
	if parseErr != nil {
		log.Warn(parseErr)
		os.Exit(1)
	}

	return document
}

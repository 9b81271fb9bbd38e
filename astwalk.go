// Package astwalk provides lazy iterators over the gqlparser query AST.
// Instead of writing recursive descent by hand, callers ask for every field
// or every directive under a root and pull them out one at a time, in
// document order. The tree is only ever read — nothing is copied, resolved,
// or mutated.
package astwalk

import (
	"github.com/vektah/gqlparser/ast"
)

// CollectFields walks the selection set and returns every field in it, in the
// order the iterator would yield them.
func CollectFields(selectionSet ast.SelectionSet) []*ast.Field {
	// build up the list of fields
	fields := []*ast.Field{}

	iter := FieldsOf(selectionSet)
	for field := iter.Next(); field != nil; field = iter.Next() {
		fields = append(fields, field)
	}

	return fields
}

// CollectDocumentFields returns every field in the document, in definition
// order.
func CollectDocumentFields(document *ast.QueryDocument) []*ast.Field {
	// build up the list of fields
	fields := []*ast.Field{}

	iter := DocumentFieldsOf(document)
	for field := iter.Next(); field != nil; field = iter.Next() {
		fields = append(fields, field)
	}

	return fields
}

// CollectDirectives walks the selection set and returns every directive in
// it, in the order the iterator would yield them.
func CollectDirectives(selectionSet ast.SelectionSet) ast.DirectiveList {
	// build up the list of directives
	directives := ast.DirectiveList{}

	iter := DirectivesOf(selectionSet)
	for directive := iter.Next(); directive != nil; directive = iter.Next() {
		directives = append(directives, directive)
	}

	return directives
}

// FieldsNamed returns every field in the selection set with the given name,
// at any depth.
func FieldsNamed(selectionSet ast.SelectionSet, name string) []*ast.Field {
	fields := []*ast.Field{}

	iter := FieldsOf(selectionSet)
	for field := iter.Next(); field != nil; field = iter.Next() {
		// only keep the fields we were asked for
		if field.Name == name {
			fields = append(fields, field)
		}
	}

	return fields
}

// DirectivesNamed returns every directive in the selection set with the given
// name, at any depth.
func DirectivesNamed(selectionSet ast.SelectionSet, name string) ast.DirectiveList {
	directives := ast.DirectiveList{}

	iter := DirectivesOf(selectionSet)
	for directive := iter.Next(); directive != nil; directive = iter.Next() {
		// only keep the directives we were asked for
		if directive.Name == name {
			directives = append(directives, directive)
		}
	}

	return directives
}

package astwalk

import (
	"github.com/vektah/gqlparser/ast"
)

// DocumentFieldIterator yields every field in a query document by chaining a
// FieldIterator over each definition's selection set, in definition order:
// operations first, then fragment definitions, each as they appear in the
// source.
type DocumentFieldIterator struct {
	// the definitions we haven't started yet
	operations ast.OperationList
	fragments  ast.FragmentDefinitionList
	// the iterator for the definition we're in the middle of
	current *FieldIterator
}

// DocumentFieldsOf returns an iterator over every field in the document.
func DocumentFieldsOf(document *ast.QueryDocument) *DocumentFieldIterator {
	return &DocumentFieldIterator{
		operations: document.Operations,
		fragments:  document.Fragments,
	}
}

// Next returns the next field in the document, or nil once every definition
// has been walked. Sub-iterators are constructed one at a time, when the
// previous definition runs out.
func (i *DocumentFieldIterator) Next() *ast.Field {
	for {
		// if we're in the middle of a definition, keep draining it
		if i.current != nil {
			if field := i.current.Next(); field != nil {
				return field
			}

			// this definition is done
			i.current = nil
		}

		// move on to the next definition
		switch {
		case len(i.operations) > 0:
			i.current = FieldsOf(i.operations[0].SelectionSet)
			i.operations = i.operations[1:]

		case len(i.fragments) > 0:
			i.current = FieldsOf(i.fragments[0].SelectionSet)
			i.fragments = i.fragments[1:]

		default:
			// no definitions left
			return nil
		}
	}
}

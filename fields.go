package astwalk

import (
	"github.com/vektah/gqlparser/ast"
)

// FieldIterator walks a selection set depth-first and yields every field it
// encounters, however deeply nested, one field per call to Next. A field is
// yielded before anything inside of its own selection set (pre-order), and
// siblings come out in document order.
//
// Fragment spreads are skipped entirely — the selections they refer to live in
// a separate fragment definition that the iterator never follows.
type FieldIterator struct {
	// one cursor of remaining siblings per level of nesting we've entered
	stack []ast.SelectionSet
}

// FieldsOf returns an iterator over every field in the selection set.
func FieldsOf(selectionSet ast.SelectionSet) *FieldIterator {
	return &FieldIterator{
		stack: []ast.SelectionSet{selectionSet},
	}
}

// Next returns the next field in the walk, or nil once every field has been
// seen. Each call does only the bookkeeping needed to find one field.
func (i *FieldIterator) Next() *ast.Field {
	for len(i.stack) > 0 {
		// the cursor for the deepest set we're still inside of
		top := len(i.stack) - 1

		// if there's nothing left at this depth, back out to the parent
		if len(i.stack[top]) == 0 {
			i.stack = i.stack[:top]
			continue
		}

		// take the next sibling off of the cursor
		selection := i.stack[top][0]
		i.stack[top] = i.stack[top][1:]

		// a selection can be one of 3 things: a field, an inline fragment, or a fragment spread
		switch selection := selection.(type) {
		case *ast.Field:
			// visit the field's own selections right after the field itself
			i.stack = append(i.stack, selection.SelectionSet)
			return selection

		case *ast.InlineFragment:
			// an inline fragment isn't a field but its selections are fair game
			i.stack = append(i.stack, selection.SelectionSet)

		case *ast.FragmentSpread:
			// nothing to walk inline
		}
	}

	// the walk is over
	return nil
}

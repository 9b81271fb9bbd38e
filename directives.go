package astwalk

import (
	"github.com/vektah/gqlparser/ast"
)

// DirectiveIterator walks a selection set depth-first and yields every
// directive attached to a field, inline fragment, or fragment spread along
// the way. A node's own directives come out as one contiguous run, in
// declared order, before the walk touches anything inside of the node.
//
// The directives on a fragment spread are yielded — the spread itself sits in
// the selection set — but the fragment definition it refers to is never
// followed. Resolving spreads (and guarding against fragment cycles) is the
// caller's job, before or after iterating.
type DirectiveIterator struct {
	// one cursor of remaining siblings per level of nesting we've entered
	stack []ast.SelectionSet
	// what's left of the directives on the node we entered most recently
	directives ast.DirectiveList
}

// DirectivesOf returns an iterator over every directive in the selection set.
func DirectivesOf(selectionSet ast.SelectionSet) *DirectiveIterator {
	return &DirectiveIterator{
		stack: []ast.SelectionSet{selectionSet},
	}
}

// Next returns the next directive in the walk, or nil once every directive
// has been seen.
func (i *DirectiveIterator) Next() *ast.Directive {
	for {
		// drain the current node's directives before going any deeper
		if len(i.directives) > 0 {
			directive := i.directives[0]
			i.directives = i.directives[1:]
			return directive
		}

		// the current node is spent; move the walk to the next one
		if !i.advance() {
			return nil
		}
	}
}

// advance moves the walk forward to the next selection node and takes over
// that node's directive list. It reports false once the walk is over.
func (i *DirectiveIterator) advance() bool {
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

		// every kind of selection can carry directives
		switch selection := selection.(type) {
		case *ast.Field:
			i.stack = append(i.stack, selection.SelectionSet)
			i.directives = selection.Directives

		case *ast.InlineFragment:
			i.stack = append(i.stack, selection.SelectionSet)
			i.directives = selection.Directives

		case *ast.FragmentSpread:
			// a spread has no inline selections, just its directives
			i.directives = selection.Directives
		}

		return true
	}

	return false
}

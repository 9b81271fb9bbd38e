package astwalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/ast"
	"github.com/vektah/gqlparser/parser"
)

func TestFieldIterator_visitsNestedFieldsInOrder(t *testing.T) {
	document, err := parser.ParseQuery(&ast.Source{Input: `
		query TestQuery {
			users {
				id
				country {
					id
				}
			}
		}
	`})
	if err != nil {
		t.Error(err.Error())
		return
	}

	// walk the body of the query
	names := []string{}
	iter := FieldsOf(document.Operations[0].SelectionSet)
	for field := iter.Next(); field != nil; field = iter.Next() {
		names = append(names, field.Name)
	}

	// a parent comes before its children, children before the parent's next sibling
	assert.Equal(t, []string{"users", "id", "country", "id"}, names)
}

func TestFieldIterator_visitsInlineFragmentFields(t *testing.T) {
	// a selection set representing
	// {
	//      birthday
	// 		... on User {
	// 			firstName
	// 			lastName
	// 		}
	//      age
	// 	}
	selectionSet := ast.SelectionSet{
		&ast.Field{
			Name: "birthday",
		},
		&ast.InlineFragment{
			TypeCondition: "User",
			SelectionSet: ast.SelectionSet{
				&ast.Field{
					Name: "firstName",
				},
				&ast.Field{
					Name: "lastName",
				},
			},
		},
		&ast.Field{
			Name: "age",
		},
	}

	names := []string{}
	iter := FieldsOf(selectionSet)
	for field := iter.Next(); field != nil; field = iter.Next() {
		names = append(names, field.Name)
	}

	// the fragment contributes its fields but no field of its own
	assert.Equal(t, []string{"birthday", "firstName", "lastName", "age"}, names)
}

func TestFieldIterator_skipsFragmentSpreads(t *testing.T) {
	// a selection set representing
	// {
	//      birthday
	//      ...UserInfo
	// 	}
	//
	// even with the spread's definition resolved by the parser, the fields of
	// UserInfo live in a separate definition and must not show up in the walk
	selectionSet := ast.SelectionSet{
		&ast.Field{
			Name: "birthday",
		},
		&ast.FragmentSpread{
			Name: "UserInfo",
			Definition: &ast.FragmentDefinition{
				Name: "UserInfo",
				SelectionSet: ast.SelectionSet{
					&ast.Field{
						Name: "firstName",
					},
				},
			},
		},
	}

	names := []string{}
	iter := FieldsOf(selectionSet)
	for field := iter.Next(); field != nil; field = iter.Next() {
		names = append(names, field.Name)
	}

	assert.Equal(t, []string{"birthday"}, names)
}

func TestFieldIterator_emptySelectionSet(t *testing.T) {
	// there's nothing to walk
	assert.Nil(t, FieldsOf(ast.SelectionSet{}).Next())
	assert.Nil(t, FieldsOf(nil).Next())
}

func TestFieldIterator_freshIteratorsAreIndependent(t *testing.T) {
	// a selection set representing
	// {
	//      firstName
	//      lastName
	// 	}
	selectionSet := ast.SelectionSet{
		&ast.Field{
			Name: "firstName",
		},
		&ast.Field{
			Name: "lastName",
		},
	}

	// two iterators over the same set, advanced out of step
	first := FieldsOf(selectionSet)
	assert.Equal(t, "firstName", first.Next().Name)

	second := FieldsOf(selectionSet)
	assert.Equal(t, "firstName", second.Next().Name)
	assert.Equal(t, "lastName", second.Next().Name)
	assert.Nil(t, second.Next())

	// the first iterator didn't move
	assert.Equal(t, "lastName", first.Next().Name)
	assert.Nil(t, first.Next())
}

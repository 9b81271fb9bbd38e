package astwalk

import (
	"github.com/mitchellh/mapstructure"
	"github.com/vektah/gqlparser/ast"
)

// DecodeArguments resolves a list of arguments against the provided variables
// and assigns the result to the receiver. It's meant for pulling the
// arguments of a directive or field found during a walk into a typed struct:
//
//	skipArgs := struct {
//		If bool `json:"if"`
//	}{}
//	err := astwalk.DecodeArguments(directive.Arguments, variables, &skipArgs)
func DecodeArguments(args ast.ArgumentList, variables map[string]interface{}, receiver interface{}) error {
	// resolve each argument into a plain value
	values := map[string]interface{}{}
	for _, arg := range args {
		value, err := arg.Value.Value(variables)
		if err != nil {
			return err
		}

		values[arg.Name] = value
	}

	// assign the resolved arguments to the receiver
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  receiver,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}

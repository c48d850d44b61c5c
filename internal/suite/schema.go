package suite

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// schemaSource constrains suite files. Definitions are closed, so unknown
// fields anywhere in the file are rejected.
const schemaSource = `
#Case: {
	name:     string & !=""
	numbers:  [...string]
	weights?: [...string]
	expect: {
		result?:    number
		error?:     "parse" | "length_mismatch"
		tolerance?: number & >=0
	}
}

#Suite: {
	name:         string & !=""
	description?: string
	cases:        [#Case, ...#Case]
}
`

// validateSchema checks raw YAML against #Suite.
func validateSchema(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("suite.cue"))
	if err := schema.Err(); err != nil {
		return err
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return err
	}

	value := ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return err
	}

	unified := schema.LookupPath(cue.ParsePath("#Suite")).Unify(value)
	return unified.Validate(cue.Concrete(true))
}

// Package document decodes JSON, YAML and URL-encoded form payloads into
// the loosely typed values processors validate: nil, bool, numbers,
// string, []any and map[string]any.
//
// JSON numbers are kept as json.Number. YAML is decoded with
// github.com/goccy/go-yaml and any non-string mapping keys are rendered as
// strings. DecodeYAMLAt selects a sub-document with a colon-separated path
// before decoding it:
//
//	v, err := document.DecodeYAMLAt(data, "forms:signup")
//	if errors.Is(err, document.ErrPathNotFound) {
//	    // no such section
//	}
//	res := processor.Run(signupSchema, v)
package document

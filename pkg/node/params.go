package node

import (
	"github.com/mitchellh/mapstructure"

	"github.com/parseline/parseline-go/pkg/parseline"
)

// decodeParams decodes an item's raw parameter map into a typed operation
// input struct. Host parameter bags are loosely typed (numbers arrive as
// float64, booleans sometimes as strings), so decoding is weakly typed.
// Failures are validation errors: they surface before any network call.
func decodeParams(params map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(params); err != nil {
		return &parseline.ValidationError{Msg: err.Error()}
	}

	return nil
}

// binaryAttachment fetches the attachment under the declared property
// name, defaulting to "data".
func binaryAttachment(item Item, property string) (Attachment, error) {
	if property == "" {
		property = "data"
	}

	attachment, ok := item.Binary[property]
	if !ok {
		return Attachment{}, &parseline.MissingInputError{Property: property}
	}

	return attachment, nil
}

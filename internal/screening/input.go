package screening

import (
	"encoding/json"
	"fmt"
)

// NameList decodes the input document's fullName field, which is either a
// single string or an array of strings. The variant is resolved here at the
// boundary so the pipeline only ever sees a flat list.
type NameList []string

func (n *NameList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*n = NameList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*n = NameList(many)
		return nil
	}

	return fmt.Errorf("%w: fullName must be a string or an array of strings", ErrInvalidSchema)
}

// InputDocument is the screening request payload read from the per-request
// input file.
type InputDocument struct {
	FullName NameList `json:"fullName" validate:"required,min=1"`
}

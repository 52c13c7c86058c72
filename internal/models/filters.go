package models

// FilterPatchRequest carries raw query-string edits; an empty value clears
// the key.
type FilterPatchRequest struct {
	Patch map[string]string `json:"patch" validate:"required"`
}

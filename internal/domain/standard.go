package domain

// StandardDefinition is one canonical curriculum-standard entry, keyed by
// its dot-delimited TEKS identifier (e.g. "112.48.c.7.C").
type StandardDefinition struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`

	// IsFolder marks grouping/heading rows in the tab-delimited source.
	// The comma-delimited source has no such concept.
	IsFolder bool `json:"isFolder,omitempty"`
}

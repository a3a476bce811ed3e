package output

// DiscoverOutput is the JSON document written by `discover --output json`.
type DiscoverOutput struct {
	Files   []DiscoverFile  `json:"files"`
	Summary DiscoverSummary `json:"summary"`
}

// DiscoverFile is one file selected for linting.
type DiscoverFile struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
}

// DiscoverSummary counts selected files per kind.
type DiscoverSummary struct {
	TotalFiles int            `json:"total_files"`
	ByKind     map[string]int `json:"by_kind"`
	Charset    string         `json:"charset"`
}

package domain

import "time"

// ProofData is the merkle-proofs.json document served to the game front end.
type ProofData struct {
	Root       string              `json:"root"`
	Generated  time.Time           `json:"generated"`
	TotalWords int                 `json:"totalWords"`
	Proofs     map[string][]string `json:"proofs"`
}

// BuildResult summarises one dictionary build.
type BuildResult struct {
	Kept    int
	Removed []string
	Root    string
}

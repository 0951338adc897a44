package search

// SearchFilesRequest selects files by base-name glob below Path.
type SearchFilesRequest struct {
	Path             string   `json:"path" jsonschema:"directory to search from"`
	Pattern          string   `json:"pattern" jsonschema:"glob matched against file names, e.g. *.txt"`
	ExcludePatterns  []string `json:"exclude_patterns,omitempty" jsonschema:"globs matched against directory paths relative to path; matching directories are skipped with their contents"`
	RespectGitignore bool     `json:"respect_gitignore,omitempty" jsonschema:"skip paths ignored by the .gitignore at path"`
}

func (r SearchFilesRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	if r.Pattern == "" {
		return ErrPatternRequired
	}
	return nil
}

type SearchFilesResponse struct {
	Matches []string `json:"matches"`
}

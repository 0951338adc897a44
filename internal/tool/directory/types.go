package directory

// Kind distinguishes files from directories in listings.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// TreeNode is a node of a directory tree. Children is nil for files.
type TreeNode struct {
	Name     string      `json:"name"`
	Type     Kind        `json:"type"`
	Children []*TreeNode `json:"children,omitempty"`
}

// -- Create Directory --

type CreateDirectoryRequest struct {
	Path string `json:"path" jsonschema:"directory to create, parents included"`
}

type CreateDirectoryResponse struct {
	AbsolutePath string `json:"path"`
	Created      bool   `json:"created"`
}

// -- List Directory --

type ListDirectoryRequest struct {
	Path string `json:"path" jsonschema:"directory to list"`
}

type ListDirectoryResponse struct {
	AbsolutePath string  `json:"path"`
	Entries      []Entry `json:"entries"`
}

// -- Directory Tree --

type DirectoryTreeRequest struct {
	Path string `json:"path" jsonschema:"directory at the top of the tree"`
}

// -- List Files --

type ListFilesRequest struct {
	Path string `json:"path,omitempty" jsonschema:"directory to list, defaults to the workspace root"`
}

type ListFilesResponse struct {
	Files []string `json:"files"`
}

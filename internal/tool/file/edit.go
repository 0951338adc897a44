package file

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/mcpbox/internal/config"
	"github.com/Cyclone1070/mcpbox/internal/tool/helper/content"
	"github.com/pmezard/go-difflib/difflib"
)

// EditFileTool handles line-based file edits.
type EditFileTool struct {
	fileOps      fileEditor
	pathResolver pathResolver
	config       *config.Config
}

// NewEditFileTool creates a new EditFileTool with injected dependencies.
func NewEditFileTool(fileOps fileEditor, pathResolver pathResolver, cfg *config.Config) *EditFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &EditFileTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
		config:       cfg,
	}
}

// Run applies the edits to the file's line sequence in the order given.
// Each edit replaces the first line exactly equal to OldText, looking at the
// lines as already modified by earlier edits. If any edit matches nothing the
// whole call fails and the file is untouched. With DryRun the result is
// computed but not written.
//
// Note: the file may change between read and write; no lock is held.
func (t *EditFileTool) Run(ctx context.Context, req EditFileRequest) (*EditFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	abs, err := t.pathResolver.Abs(req.Path)
	if err != nil {
		return nil, err
	}

	info, err := t.fileOps.Stat(abs)
	if err != nil {
		return nil, &StatError{Path: abs, Cause: err}
	}
	if info.IsDir() {
		return nil, &IsDirectoryError{Path: abs}
	}

	data, err := t.fileOps.ReadFile(abs)
	if err != nil {
		return nil, &ReadError{Path: abs, Cause: err}
	}
	original := string(data)

	lines, err := ApplyEdits(abs, content.SplitLines(original), req.Edits)
	if err != nil {
		return nil, err
	}

	eol := content.LineEnding(original)
	updated := strings.Join(lines, eol)
	if content.HasTrailingNewline(original) && len(lines) > 0 {
		updated += eol
	}

	maxFileSize := t.config.Tools.MaxFileSize
	if int64(len(updated)) > maxFileSize {
		return nil, &TooLargeError{Path: abs, Size: int64(len(updated)), Limit: maxFileSize}
	}

	resp := &EditFileResponse{
		AbsolutePath: abs,
		Content:      updated,
		Diff:         computeUnifiedDiff(filepath.Base(abs), original, updated),
	}

	if req.DryRun {
		return resp, nil
	}

	if err := t.fileOps.WriteFileAtomic(abs, []byte(updated), info.Mode().Perm()); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}
	resp.Written = true

	return resp, nil
}

// ApplyEdits returns a copy of lines with every edit applied sequentially.
// The input slice is not modified.
func ApplyEdits(path string, lines []string, edits []EditOperation) ([]string, error) {
	out := make([]string, len(lines))
	copy(out, lines)

	for i, edit := range edits {
		idx := indexOf(out, edit.OldText)
		if idx < 0 {
			return nil, &EditNotFoundError{Path: path, Index: i, OldText: edit.OldText}
		}
		out[idx] = edit.NewText
	}
	return out, nil
}

func indexOf(lines []string, target string) int {
	for i, line := range lines {
		if line == target {
			return i
		}
	}
	return -1
}

func computeUnifiedDiff(filename, oldContent, newContent string) string {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.ReplaceAll(oldContent, "\r\n", "\n")),
		B:        difflib.SplitLines(strings.ReplaceAll(newContent, "\r\n", "\n")),
		FromFile: "a/" + filename,
		ToFile:   "b/" + filename,
		Context:  3,
	}
	diff, _ := difflib.GetUnifiedDiffString(ud)
	return diff
}

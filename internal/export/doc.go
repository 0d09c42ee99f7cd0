// Package export writes the artifacts the next pipeline step consumes: the
// normalized PNG copies (NN_role.png) and the summary.json manifest.
//
// The manifest is an ordered JSON array of {id, role, path, width, height}
// records with 2-space indentation. Width and height describe the oriented
// input image, not the resized copy.
package export

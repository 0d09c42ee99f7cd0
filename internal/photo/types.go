package photo

import "image"

// Role is an asset's function in the composition.
type Role string

const (
	RoleElement    Role = "element"    // Subject image composited onto the background.
	RoleBackground Role = "background" // The single backdrop image.
)

// Asset is one input photograph after decoding.
// Width and Height are the oriented, pre-resize dimensions.
type Asset struct {
	ID     int // 1-based position in filename order.
	Role   Role
	Path   string // Input path as discovered; recorded verbatim in the manifest.
	Width  int
	Height int

	Image *image.NRGBA // In-memory pixels; never serialized.
}

// RoleFor returns the role of the asset with the given 1-based id: the
// first elementCount ids are elements, everything after is background.
func RoleFor(id, elementCount int) Role {
	if id <= elementCount {
		return RoleElement
	}
	return RoleBackground
}

// Package photo decodes input photographs into a canonical in-memory form
// and assigns them their pipeline role.
//
// Every decoded image is upright (its EXIF orientation applied) and stored
// as *image.NRGBA, 8-bit non-premultiplied RGBA, regardless of the source
// format. Supported inputs are JPEG, PNG, WebP and TIFF.
//
// Files:
//   - types.go: Role, Asset, RoleFor
//   - load.go: Load, NewAsset, LoadAssets
//   - orient.go: Orient (the eight EXIF transforms)
//   - exif.go: Orientation (EXIF lookup across JPEG/TIFF/PNG/WebP containers)
//   - resize.go: Fit, Shrink (aspect-preserving, shrink-only Lanczos resize)
package photo

package shapecache

// LibraryVersion is injected at build time via -ldflags
var LibraryVersion = "dev"

// Version returns the current version of gopher-shapes
func Version() string {
	return LibraryVersion
}

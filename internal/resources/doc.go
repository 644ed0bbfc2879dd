// Package resources resolves display strings for the active locale.
//
// Message files are TOML documents named messages.<lang>.toml. A default set
// is embedded in the binary; a directory of files with the same names can be
// supplied to override or extend it. String arrays are stored as indexed keys
// (key.0, key.1, ...) and end at the first missing index.
package resources

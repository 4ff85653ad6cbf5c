package s6ctl

// Version is the current library version.
// It follows semantic versioning: MAJOR.MINOR.PATCH.
const Version = "0.1.0"

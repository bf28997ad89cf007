package process

// Package process implements the link submission lifecycle: the HTTP client
// for the processing API and the service that owns the request state, issues
// one logical submission at a time, and discards settlements that a newer
// submission has superseded.

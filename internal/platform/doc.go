package platform

// Package platform contains pure helpers shared by the client and the
// processing daemon: YouTube link parsing, metadata formatting, and
// filesystem glue.

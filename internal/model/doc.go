package model

// Package model defines domain data structures shared by the client and the
// processing daemon: media metadata, processing results, their wire
// representations, and the request lifecycle state. Structures are designed
// for direct binding in the UI and explicit state transitions.

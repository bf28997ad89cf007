package model

// Metadata holds the descriptive attributes of a resolved media item. Title
// and Channel are always present; the remaining fields are empty when the
// backend could not determine them, which is not an error.
type Metadata struct {
	Title     string
	Channel   string
	Duration  string // display format, e.g. "3:21"
	Thumbnail string // thumbnail image URL
	Album     string // album name scraped from the video description
}

// ProcessResult is the settled outcome of a successful link submission.
type ProcessResult struct {
	Metadata    Metadata
	DownloadURL string // empty when the item cannot be offered for download
}

// Downloadable reports whether a download reference was supplied. An absent
// reference signals a licensing restriction, not a failure.
func (r *ProcessResult) Downloadable() bool {
	return r.DownloadURL != ""
}

// RequestState is the single owned state of the link submission lifecycle.
// Result and ErrMessage are never populated at the same time; both are cleared
// when a new submission is issued.
type RequestState struct {
	InputText  string
	Phase      RequestPhase
	Result     *ProcessResult
	ErrMessage string
	Seq        uint64 // sequence number of the most recent submission
}

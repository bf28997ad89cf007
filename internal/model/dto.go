package model

// MetadataDTO is the wire representation of Metadata. Optional attributes are
// pointers so that a backend null survives the round trip as absence.
type MetadataDTO struct {
	Title     string  `json:"title"`
	Channel   string  `json:"channel"`
	Duration  *string `json:"duration"`
	Thumbnail *string `json:"thumbnail"`
	Album     *string `json:"album,omitempty"`
}

// ProcessResultDTO is the wire representation of ProcessResult as returned by
// the processing endpoint. A null download_url is a valid terminal state.
type ProcessResultDTO struct {
	Metadata    MetadataDTO `json:"metadata"`
	DownloadURL *string     `json:"download_url"`
}

// ToResult converts the wire representation into the domain type, mapping
// nulls to empty strings.
func (d *ProcessResultDTO) ToResult() *ProcessResult {
	return &ProcessResult{
		Metadata: Metadata{
			Title:     d.Metadata.Title,
			Channel:   d.Metadata.Channel,
			Duration:  deref(d.Metadata.Duration),
			Thumbnail: deref(d.Metadata.Thumbnail),
			Album:     deref(d.Metadata.Album),
		},
		DownloadURL: deref(d.DownloadURL),
	}
}

// NewProcessResultDTO builds the wire representation of a result, mapping
// empty optional fields to nulls.
func NewProcessResultDTO(r *ProcessResult) *ProcessResultDTO {
	return &ProcessResultDTO{
		Metadata: MetadataDTO{
			Title:     r.Metadata.Title,
			Channel:   r.Metadata.Channel,
			Duration:  optional(r.Metadata.Duration),
			Thumbnail: optional(r.Metadata.Thumbnail),
			Album:     optional(r.Metadata.Album),
		},
		DownloadURL: optional(r.DownloadURL),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package converter

import (
	"github.com/you-humble/fieldservice/internal/model"
)

// SuggestRequest is the body accepted by the notes suggestion provider.
type SuggestRequest struct {
	Description string   `json:"description"`
	Notes       string   `json:"notes"`
	Parts       []string `json:"parts"`
	Duration    string   `json:"duration"`
}

type SuggestResponse struct {
	Text string `json:"text"`
}

func SummaryRequestToDTO(req model.SummaryRequest) SuggestRequest {
	parts := req.PartNames
	if parts == nil {
		parts = []string{}
	}

	return SuggestRequest{
		Description: req.Description,
		Notes:       req.DraftNotes,
		Parts:       parts,
		Duration:    req.DurationLabel,
	}
}

package continuity

import "examprep-backend/internal/model"

// Banner is the one transient message shown after the OAuth round trip.
type Banner struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

type saveReq struct {
	Messages []model.ChatMessage `json:"messages"`
}

type restoreResp struct {
	Banner   *Banner             `json:"banner,omitempty"`
	Messages []model.ChatMessage `json:"messages,omitempty"`
	Restored bool                `json:"restored"`
}

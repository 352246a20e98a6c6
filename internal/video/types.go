package video

// Video is one normalized search result surfaced next to the chat reply.
type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

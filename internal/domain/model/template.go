package model

// Template describes a resume layout offered to clients. Templates with
// a non-empty Status are announced but not selectable yet.
type Template struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	RecommendedFor string `json:"recommendedFor"`
	Status         string `json:"status,omitempty"`
}

// Available reports whether the template can be used for new orders.
func (t Template) Available() bool {
	return t.Status == ""
}

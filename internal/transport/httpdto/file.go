package httpdto

// RegisterLinkRequest is used for POST /v1/files/link
type RegisterLinkRequest struct {
	URL          string `json:"url" binding:"required"`
	OriginalName string `json:"original_name,omitempty"`
	Category     string `json:"category,omitempty"`
	Description  string `json:"description,omitempty"`
}

// UpdateFileRequest is used for PATCH /v1/files/:id. Only the original
// name and description are patchable; everything else is immutable.
type UpdateFileRequest struct {
	OriginalName *string `json:"original_name,omitempty"`
	Description  *string `json:"description,omitempty"`
}

package httpdto

// UpdateBillboardRequest is used for PUT /v1/billboard
type UpdateBillboardRequest struct {
	Message string `json:"message" binding:"required"`
}

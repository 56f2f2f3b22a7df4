package httpdto

// CreateDeviceLogRequest is used for POST /v1/device-logs. The source
// address and user agent are taken from the request itself.
type CreateDeviceLogRequest struct {
	Name string `json:"name" binding:"required"`
}

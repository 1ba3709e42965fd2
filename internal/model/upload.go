package model

// UploadResult is the outcome of a single object upload.
type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Key     string `json:"key,omitempty"`
	Name    string `json:"name,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BulkUploadResult partitions a multi-file upload. Success is true only when
// nothing failed.
type BulkUploadResult struct {
	Success    bool           `json:"success"`
	Successful []UploadResult `json:"successful"`
	Failed     []UploadResult `json:"failed"`
	Total      int            `json:"total"`
}

// UploadProgress is the last reported state of an in-flight upload.
type UploadProgress struct {
	Percent float64 `json:"percent"`
	Done    bool    `json:"done"`
	Error   string  `json:"error,omitempty"`
}

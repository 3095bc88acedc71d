package api

// FieldWriteRequest represents a partial document update. Fields present in
// the map are merged into the remote document, all other fields are untouched.
type FieldWriteRequest struct {
	Fields map[string]any `json:"fields"`
}

// UploadResponse represents the result of a successful supporting-document upload
type UploadResponse struct {
	URL  string `json:"url"`  // public download URL of the stored blob
	Path string `json:"path"` // storage path, used for later deletion
}

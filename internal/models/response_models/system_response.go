package response_models

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type VersionResponse struct {
	Version       string `json:"version"`
	Name          string `json:"name"`
	SchemaVersion string `json:"schema_version"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

package apimodels

type AnalysisRequest struct {
	// ImageBase64 is the photograph to evaluate, as a data URL
	// (mime prefix + base64 payload).
	ImageBase64 string `json:"imageBase64"`
}

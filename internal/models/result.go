package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Kind         string `json:"kind"`
}

type AnalyzeResponse struct {
	SessionID  string   `json:"session_id"`
	AnalysisID []string `json:"analysis_ids"`
	Status     string   `json:"status"`
}

type ResultsResponse struct {
	SessionID string     `json:"session_id"`
	Results   []Analysis `json:"results"`
	BestMatch *Analysis  `json:"best_match,omitempty"`
}

type ChatRequest struct {
	Question string `json:"question"`
}

type ChatResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ChatTurn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

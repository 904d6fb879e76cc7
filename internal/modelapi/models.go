package modelapi

// ModelInfo describes one selectable model with the labels the UI shows
// and the per-1K-token prices used for cost estimates.
type ModelInfo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	CostLabel       string  `json:"cost_label"`
	QualityLabel    string  `json:"quality_label"`
	LatencyLabel    string  `json:"latency_label"`
	InputCostPer1K  float64 `json:"input_cost_per_1k"`
	OutputCostPer1K float64 `json:"output_cost_per_1k"`
}

const DefaultModelID = "nova-lite-v1"

var AllModels = []ModelInfo{
	{
		ID:              "nova-lite-v1",
		Name:            "Nova Lite",
		Description:     "Pilihan seimbang untuk kebutuhan sehari-hari.",
		CostLabel:       "hemat",
		QualityLabel:    "baik",
		LatencyLabel:    "cepat",
		InputCostPer1K:  0.00025,
		OutputCostPer1K: 0.00125,
	},
	{
		ID:              "nova-pro-v1",
		Name:            "Nova Pro",
		Description:     "Kualitas tulisan terbaik untuk konten penting.",
		CostLabel:       "premium",
		QualityLabel:    "terbaik",
		LatencyLabel:    "sedang",
		InputCostPer1K:  0.003,
		OutputCostPer1K: 0.015,
	},
	{
		ID:              "titan-text-express-v1",
		Name:            "Titan Text Express",
		Description:     "Alternatif ekonomis untuk draf cepat.",
		CostLabel:       "standar",
		QualityLabel:    "cukup",
		LatencyLabel:    "cepat",
		InputCostPer1K:  0.0008,
		OutputCostPer1K: 0.0016,
	},
}

// Lookup returns the catalog entry for a model ID.
func Lookup(id string) (ModelInfo, bool) {
	for _, m := range AllModels {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// EstimateCost returns the estimated USD cost of one call. Unknown model
// IDs estimate to zero.
func EstimateCost(modelID string, promptTokens, completionTokens int) float64 {
	m, ok := Lookup(modelID)
	if !ok {
		return 0
	}
	return float64(promptTokens)/1000*m.InputCostPer1K + float64(completionTokens)/1000*m.OutputCostPer1K
}

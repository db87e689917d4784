package responses

type SymptomCategory struct {
	Category string   `json:"category"`
	Symptoms []string `json:"symptoms"`
}

type Condition struct {
	Name            string   `json:"name"`
	Probability     string   `json:"probability"`
	Description     string   `json:"description"`
	Urgency         string   `json:"urgency"`
	Recommendations []string `json:"recommendations"`
}

package requests

type AnalyzeSymptomsRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
}

package symptoms

import (
	"context"
	"dermacare-service/internal/app/contracts"
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

// The checker is intentionally a static triage table, not a diagnostic
// engine. Results always steer the patient toward a dermatologist.
var symptomCategories = []responses.SymptomCategory{
	{
		Category: "Skin Changes",
		Symptoms: []string{"Redness", "Dry skin", "Oily skin", "Discoloration", "Texture changes", "Scaling"},
	},
	{
		Category: "Lesions & Growths",
		Symptoms: []string{"New moles", "Changing moles", "Bumps", "Lumps", "Warts", "Cysts"},
	},
	{
		Category: "Sensations",
		Symptoms: []string{"Itching", "Burning", "Pain", "Tingling", "Numbness", "Sensitivity"},
	},
	{
		Category: "Conditions",
		Symptoms: []string{"Rash", "Acne", "Blisters", "Hives", "Eczema-like symptoms", "Psoriasis-like symptoms"},
	},
}

var possibleConditions = []responses.Condition{
	{
		Name:            "Contact Dermatitis",
		Probability:     "High",
		Description:     "Skin reaction to irritants or allergens",
		Urgency:         "low",
		Recommendations: []string{"Avoid known irritants", "Use gentle moisturizers", "Consider antihistamines"},
	},
	{
		Name:            "Seborrheic Dermatitis",
		Probability:     "Medium",
		Description:     "Common skin condition causing scaly patches",
		Urgency:         "low",
		Recommendations: []string{"Use antifungal shampoos", "Apply prescribed topical treatments", "Manage stress"},
	},
	{
		Name:            "Suspicious Lesion",
		Probability:     "Low",
		Description:     "Requires immediate professional evaluation",
		Urgency:         "high",
		Recommendations: []string{"Schedule urgent dermatologist appointment", "Monitor for changes", "Avoid sun exposure"},
	},
}

type symptomUsecase struct {
	Log *zap.Logger
}

func NewSymptomUsecase(logger *zap.Logger) contracts.SymptomUsecase {
	return &symptomUsecase{Log: logger}
}

func (uc *symptomUsecase) Categories(ctx context.Context) ([]responses.SymptomCategory, error) {
	return symptomCategories, nil
}

func (uc *symptomUsecase) Analyze(ctx context.Context, request *requests.AnalyzeSymptomsRequest) ([]responses.Condition, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("symptomUsecase.Analyze called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSymptomCountKey, len(request.Symptoms)),
	)

	return possibleConditions, nil
}

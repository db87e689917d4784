package contracts

import (
	"context"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/dto/responses"
)

type SymptomUsecase interface {
	Categories(ctx context.Context) ([]responses.SymptomCategory, error)
	Analyze(ctx context.Context, request *requests.AnalyzeSymptomsRequest) ([]responses.Condition, error)
}

package usecase

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/pkg/errors"
	"github.com/timetable-editor/internal/usecase/dto"
)

// RulesUseCase - чистые правила редактора поверх каталога станций.
// Ничего не сохраняет.
type RulesUseCase struct {
	sync   *SyncUseCase
	logger *zap.Logger
}

func NewRulesUseCase(sync *SyncUseCase, logger *zap.Logger) *RulesUseCase {
	return &RulesUseCase{sync: sync, logger: logger}
}

// AnalyzeIdentifier нормализует ввод и разбирает номер
func (uc *RulesUseCase) AnalyzeIdentifier(raw string) domain.IdentifierAnalysis {
	return domain.AnalyzeIdentifier(domain.NormalizeTrainID(raw))
}

func (uc *RulesUseCase) Templates() []domain.SectionTemplate {
	return domain.SectionTemplates()
}

func (uc *RulesUseCase) Stations(ctx context.Context) ([]domain.Station, error) {
	return uc.sync.Stations(ctx)
}

func (uc *RulesUseCase) findStation(ctx context.Context, stationID string) (domain.Station, error) {
	stations, err := uc.sync.Stations(ctx)
	if err != nil {
		return domain.Station{}, err
	}
	for _, st := range stations {
		if st.ID == stationID {
			return st, nil
		}
	}
	return domain.Station{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"station_id": stationID,
		"reason":     "unknown station",
	})
}

func (uc *RulesUseCase) Classify(ctx context.Context, req dto.ClassifyRequest) (*domain.RoleClassification, error) {
	station, err := uc.findStation(ctx, req.StationID)
	if err != nil {
		return nil, err
	}
	result := domain.ClassifyRole(station, req.OriginID, req.DestinationID, req.Direction)
	return &result, nil
}

// Autofill возвращает копию строк с рассчитанным временем отправления
func (uc *RulesUseCase) Autofill(req dto.AutofillRequest) (*dto.RowsResponse, error) {
	rows := make([]domain.EditorRow, len(req.Rows))
	copy(rows, req.Rows)

	if err := domain.AutofillTimes(rows, req.Direction); err != nil {
		return nil, ruleError(err)
	}
	return &dto.RowsResponse{Rows: rows}, nil
}

func (uc *RulesUseCase) Validate(req dto.ValidateRequest) (*dto.ValidationResponse, error) {
	if err := domain.ValidateStops(req.Stops); err != nil {
		return nil, invalidTimeError(err)
	}
	return &dto.ValidationResponse{Valid: true}, nil
}

// ApplySection отмечает участок по шаблону или по паре станций и
// пересчитывает роли строк
func (uc *RulesUseCase) ApplySection(req dto.SectionRequest) (*dto.RowsResponse, error) {
	origin, destination := req.OriginID, req.DestinationID
	if req.TemplateKey != "" {
		tpl, ok := domain.FindSectionTemplate(req.TemplateKey)
		if !ok {
			return nil, errors.ErrUnknownTemplate.WithDetails(map[string]interface{}{
				"template_key": req.TemplateKey,
			})
		}
		origin, destination = tpl.Origin, tpl.Destination
	}

	rows := make([]domain.EditorRow, len(req.Rows))
	copy(rows, req.Rows)

	if err := domain.ApplySection(rows, origin, destination); err != nil {
		return nil, ruleError(err)
	}
	domain.ShapeRows(rows, domain.RowContext{Direction: req.Direction, Company: req.Company})

	return &dto.RowsResponse{Rows: rows}, nil
}

func ruleError(err error) error {
	switch {
	case stderrors.Is(err, domain.ErrNoSeedTime):
		return errors.ErrNoSeedTime
	case stderrors.Is(err, domain.ErrUnknownDirection):
		return errors.ErrUnknownDirection
	case stderrors.Is(err, domain.ErrStationNotInList):
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "section station is not in the row list",
		})
	default:
		return errors.ErrInternalServer.Wrap(err)
	}
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/pkg/utils"
	"github.com/timetable-editor/internal/usecase"
)

// TimetableHandler - чтение расписания: станции, поезда, аудит
type TimetableHandler struct {
	rulesUC  *usecase.RulesUseCase
	editorUC *usecase.EditorUseCase
	auditUC  *usecase.AuditUseCase
	logger   *zap.Logger
}

func NewTimetableHandler(
	rulesUC *usecase.RulesUseCase,
	editorUC *usecase.EditorUseCase,
	auditUC *usecase.AuditUseCase,
	logger *zap.Logger,
) *TimetableHandler {
	return &TimetableHandler{
		rulesUC:  rulesUC,
		editorUC: editorUC,
		auditUC:  auditUC,
		logger:   logger,
	}
}

// ListStations godoc
// @Summary Станции линии
// @Description Станции в каноническом порядке (от Karuizawa к Myoko-Kogen)
// @Tags Timetable
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Station}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/stations [get]
func (h *TimetableHandler) ListStations(c *fiber.Ctx) error {
	stations, err := h.rulesUC.Stations(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stations, &utils.Meta{Total: len(stations)})
}

// ListTrains godoc
// @Summary Существующие поезда
// @Description Номера поездов с фильтром по подстроке, числа сортируются по значению
// @Tags Timetable
// @Produce json
// @Param filter query string false "Подстрока номера"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TrainSummary}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/trains [get]
func (h *TimetableHandler) ListTrains(c *fiber.Ctx) error {
	trains, err := h.editorUC.ListTrains(c.UserContext(), c.Query("filter"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, trains, &utils.Meta{Total: len(trains)})
}

// GetTrain godoc
// @Summary Поезд из хранилища
// @Description Запись поезда с остановками, восстановленными из записей станций. Отсутствие поезда не ошибка.
// @Tags Timetable
// @Produce json
// @Param id path string true "Номер поезда"
// @Success 200 {object} utils.SuccessResponse{data=dto.TrainResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/trains/{id} [get]
func (h *TimetableHandler) GetTrain(c *fiber.Ctx) error {
	result, err := h.editorUC.GetTrain(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Consistency godoc
// @Summary Проверка согласованности
// @Description Сравнивает запись поезда с его записями на станциях. Только отчет.
// @Tags Timetable
// @Produce json
// @Param id path string true "Номер поезда"
// @Success 200 {object} utils.SuccessResponse{data=domain.ConsistencyReport}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/trains/{id}/consistency [get]
func (h *TimetableHandler) Consistency(c *fiber.Ctx) error {
	report, err := h.auditUC.Check(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	if !report.Consistent {
		h.logger.Warn("Inconsistent train reported", zap.String("train_id", report.TrainID))
	}
	return utils.SendSuccess(c, report, nil)
}

// AnalyzeIdentifier godoc
// @Summary Разбор номера поезда
// @Description Направление и компания по номеру. Неподходящий номер дает результат "unknown".
// @Tags Rules
// @Produce json
// @Param id path string true "Номер поезда"
// @Success 200 {object} utils.SuccessResponse{data=domain.IdentifierAnalysis}
// @Router /api/v1/identifiers/{id} [get]
func (h *TimetableHandler) AnalyzeIdentifier(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.rulesUC.AnalyzeIdentifier(c.Params("id")), nil)
}

// ListTemplates godoc
// @Summary Шаблоны участков
// @Tags Rules
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SectionTemplate}
// @Router /api/v1/templates [get]
func (h *TimetableHandler) ListTemplates(c *fiber.Ctx) error {
	templates := h.rulesUC.Templates()
	return utils.SendSuccess(c, templates, &utils.Meta{Total: len(templates)})
}

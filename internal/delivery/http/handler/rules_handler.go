package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/pkg/utils"
	"github.com/timetable-editor/internal/usecase"
	"github.com/timetable-editor/internal/usecase/dto"
)

// RulesHandler - правила редактора без сохранения
type RulesHandler struct {
	rulesUC *usecase.RulesUseCase
	logger  *zap.Logger
}

func NewRulesHandler(rulesUC *usecase.RulesUseCase, logger *zap.Logger) *RulesHandler {
	return &RulesHandler{
		rulesUC: rulesUC,
		logger:  logger,
	}
}

// Classify godoc
// @Summary Роль станции
// @Description Роль станции (origin/via/destination) и подсказки путей
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.ClassifyRequest true "Станция и конечные пункты"
// @Success 200 {object} utils.SuccessResponse{data=domain.RoleClassification}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/rules/classify [post]
func (h *RulesHandler) Classify(c *fiber.Ctx) error {
	var req dto.ClassifyRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rulesUC.Classify(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Autofill godoc
// @Summary Автозаполнение времени
// @Description Рассчитывает время отправления по интервалам от первого заполненного времени
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.AutofillRequest true "Строки в порядке движения"
// @Success 200 {object} utils.SuccessResponse{data=dto.RowsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/rules/autofill [post]
func (h *RulesHandler) Autofill(c *fiber.Ctx) error {
	var req dto.AutofillRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rulesUC.Autofill(req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Validate godoc
// @Summary Проверка времени
// @Description Проверяет формат HH:MM у всех заполненных полей. Первая ошибка указывает станцию и поле.
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.ValidateRequest true "Остановки"
// @Success 200 {object} utils.SuccessResponse{data=dto.ValidationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/rules/validate [post]
func (h *RulesHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rulesUC.Validate(req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// ApplySection godoc
// @Summary Отметить участок
// @Description Отмечает станции участка по шаблону или по паре станций и пересчитывает роли
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.SectionRequest true "Участок и строки"
// @Success 200 {object} utils.SuccessResponse{data=dto.RowsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/rules/section [post]
func (h *RulesHandler) ApplySection(c *fiber.Ctx) error {
	var req dto.SectionRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rulesUC.ApplySection(req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/pkg/utils"
	"github.com/timetable-editor/internal/usecase"
	"github.com/timetable-editor/internal/usecase/dto"
)

// SessionHandler - сессии редактора: загрузка, сохранение, удаление
type SessionHandler struct {
	editorUC *usecase.EditorUseCase
	logger   *zap.Logger
}

func NewSessionHandler(editorUC *usecase.EditorUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		editorUC: editorUC,
		logger:   logger,
	}
}

// Create godoc
// @Summary Новая сессия редактора
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Router /api/v1/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, h.editorUC.CreateSession(), nil)
}

// Get godoc
// @Summary Состояние сессии
// @Tags Sessions
// @Produce json
// @Param sid path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{sid} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.editorUC.GetSession(id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Load godoc
// @Summary Загрузить поезд
// @Description Загружает поезд в сессию; неизвестный номер открывает новый поезд. При несохраненных изменениях нужен confirm_discard.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param sid path string true "ID сессии"
// @Param request body dto.LoadRequest true "Номер поезда"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{sid}/load [post]
func (h *SessionHandler) Load(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.LoadRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.editorUC.Load(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// MarkDirty godoc
// @Summary Отметка несохраненных изменений
// @Tags Sessions
// @Accept json
// @Produce json
// @Param sid path string true "ID сессии"
// @Param request body dto.DirtyRequest true "Признак изменений"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{sid}/dirty [post]
func (h *SessionHandler) MarkDirty(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.DirtyRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.editorUC.MarkDirty(id, req.Dirty)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Save godoc
// @Summary Сохранить поезд
// @Description Полностью заменяет запись поезда и его записи на станциях
// @Tags Sessions
// @Accept json
// @Produce json
// @Param sid path string true "ID сессии"
// @Param request body dto.SaveRequest true "Форма поезда"
// @Success 200 {object} utils.SuccessResponse{data=dto.SyncResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{sid}/save [post]
func (h *SessionHandler) Save(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SaveRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.editorUC.Save(c.UserContext(), id, req)
	if err != nil {
		h.logger.Warn("Save failed", zap.String("session_id", id.String()), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// DeleteTrain godoc
// @Summary Удалить загруженный поезд
// @Tags Sessions
// @Produce json
// @Param sid path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.SyncResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{sid}/train [delete]
func (h *SessionHandler) DeleteTrain(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.editorUC.DeleteTrain(c.UserContext(), id)
	if err != nil {
		h.logger.Warn("Delete failed", zap.String("session_id", id.String()), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

package retro

import (
	"errors"
	"fmt"
	"net/http"

	"myretro/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const basePath = "/retros"

type Handler interface {
	GetAllRetroBoards(c *gin.Context)
	SaveRetroBoard(c *gin.Context)
	FindRetroBoardByID(c *gin.Context)
	GetAllCardsFromBoard(c *gin.Context)
	AddCardToRetroBoard(c *gin.Context)
	GetCardFromRetroBoard(c *gin.Context)
	DeleteCardFromRetroBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List retro boards
// @Tags Retro
// @Produce json
// @Success 200 {array} RetroBoard
// @Router /retros [get]
func (h *handler) GetAllRetroBoards(c *gin.Context) {
	boards, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// @Summary Create a retro board
// @Tags Retro
// @Accept json
// @Produce json
// @Param board body RetroBoard true "Retro board"
// @Success 201 {object} RetroBoard
// @Header 201 {string} Location "/retros/{uuid}"
// @Failure 400 {object} validation.ErrorResponse
// @Router /retros [post]
func (h *handler) SaveRetroBoard(c *gin.Context) {
	var board RetroBoard
	if invalid := validation.BindJSON(c, &board); invalid != nil {
		c.JSON(http.StatusBadRequest, invalid)
		return
	}

	result, err := h.service.Save(c.Request.Context(), &board)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%s", basePath, result.ID))
	c.JSON(http.StatusCreated, result)
}

// @Summary Get a retro board
// @Tags Retro
// @Produce json
// @Param uuid path string true "Board UUID"
// @Success 200 {object} RetroBoard
// @Failure 404 {object} ErrorResponse
// @Router /retros/{uuid} [get]
func (h *handler) FindRetroBoardByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "uuid", "board")
	if !ok {
		return
	}

	board, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary List the cards of a retro board
// @Tags Retro
// @Produce json
// @Param uuid path string true "Board UUID"
// @Success 200 {array} Card
// @Failure 404 {object} ErrorResponse
// @Router /retros/{uuid}/cards [get]
func (h *handler) GetAllCardsFromBoard(c *gin.Context) {
	id, ok := parseUUIDParam(c, "uuid", "board")
	if !ok {
		return
	}

	cards, err := h.service.FindAllCardsFromRetroBoard(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// @Summary Add a card to a retro board
// @Tags Retro
// @Accept json
// @Produce json
// @Param uuid path string true "Board UUID"
// @Param card body Card true "Card"
// @Success 201 {object} Card
// @Header 201 {string} Location "/retros/{uuid}/cards/{cardUuid}"
// @Failure 400 {object} validation.ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /retros/{uuid}/cards [put]
func (h *handler) AddCardToRetroBoard(c *gin.Context) {
	id, ok := parseUUIDParam(c, "uuid", "board")
	if !ok {
		return
	}

	var card Card
	if invalid := validation.BindJSON(c, &card); invalid != nil {
		c.JSON(http.StatusBadRequest, invalid)
		return
	}

	result, err := h.service.AddCardToRetroBoard(c.Request.Context(), id, &card)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%s/cards/%s", basePath, id, result.ID))
	c.JSON(http.StatusCreated, result)
}

// @Summary Get a card of a retro board
// @Tags Retro
// @Produce json
// @Param uuid path string true "Board UUID"
// @Param cardUuid path string true "Card UUID"
// @Success 200 {object} Card
// @Failure 404 {object} ErrorResponse
// @Router /retros/{uuid}/cards/{cardUuid} [get]
func (h *handler) GetCardFromRetroBoard(c *gin.Context) {
	id, ok := parseUUIDParam(c, "uuid", "board")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardUuid", "card")
	if !ok {
		return
	}

	card, err := h.service.FindCardByUUIDFromRetroBoard(c.Request.Context(), id, cardID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Remove a card from a retro board
// @Tags Retro
// @Param uuid path string true "Board UUID"
// @Param cardUuid path string true "Card UUID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /retros/{uuid}/cards/{cardUuid} [delete]
func (h *handler) DeleteCardFromRetroBoard(c *gin.Context) {
	id, ok := parseUUIDParam(c, "uuid", "board")
	if !ok {
		return
	}
	cardID, ok := parseUUIDParam(c, "cardUuid", "card")
	if !ok {
		return
	}

	if err := h.service.RemoveCardFromRetroBoard(c.Request.Context(), id, cardID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseUUIDParam(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid %s ID", entity)})
		return uuid.Nil, false
	}
	return id, true
}

func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBoardNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrBoardNotFound.Error()})
	case errors.Is(err, ErrCardNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrCardNotFound.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

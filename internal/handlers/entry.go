package handlers

import (
	"net/http"

	"github.com/LudyPitra/AI-Diary-App/internal/auth"
	dom "github.com/LudyPitra/AI-Diary-App/internal/domain"
	"github.com/LudyPitra/AI-Diary-App/internal/dto"
	"github.com/LudyPitra/AI-Diary-App/internal/service"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	svc *service.EntryService
}

func NewEntryHandler(svc *service.EntryService) *EntryHandler {
	return &EntryHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's diary entries
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.EntryResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	user := auth.CurrentUser(c)
	list, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entriesToResponses(list))
}

// Create godoc
// @Summary      Create a diary entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateEntryRequest  true  "Entry body"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /entries/ [post]
func (h *EntryHandler) Create(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := auth.CurrentUser(c)
	e, err := h.svc.Create(c.Request.Context(), user.ID, req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entryToResponse(e))
}

func entryToResponse(e dom.Entry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		OwnerID:   e.OwnerID,
	}
}

func entriesToResponses(list []dom.Entry) []dto.EntryResponse {
	out := make([]dto.EntryResponse, len(list))
	for i := range list {
		out[i] = entryToResponse(list[i])
	}
	return out
}

func userToResponse(u dom.User, entries []dom.Entry) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
		Entries:  entriesToResponses(entries),
	}
}

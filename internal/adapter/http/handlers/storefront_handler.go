package handlers

import (
	"net/http"

	"topup_store/internal/adapter/http/dto/request"
	"topup_store/internal/adapter/http/dto/response"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StorefrontHandler serves the public catalog endpoints.
type StorefrontHandler struct {
	usecase usecase.IStorefrontUseCase
}

func NewStorefrontHandler(uc usecase.IStorefrontUseCase) *StorefrontHandler {
	return &StorefrontHandler{usecase: uc}
}

func (h *StorefrontHandler) InitData(c *gin.Context) {
	data, err := h.usecase.InitData(c.Request.Context())
	if err != nil {
		logger.L().Errorf("[storefront][handler] init-data failed err=%v", err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInitData(data))
}

func (h *StorefrontHandler) CheckNickname(c *gin.Context) {
	var req request.CheckNicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest("game and id are required"))
		return
	}

	name, err := h.usecase.CheckNickname(c.Request.Context(), req.Game, req.ID, req.Zone)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, response.MessageResponse{Success: false, Message: appErr.Message})
		return
	}
	c.JSON(http.StatusOK, response.NicknameResponse{Success: true, Name: name})
}

// Channels returns the gateway body as-is.
func (h *StorefrontHandler) Channels(c *gin.Context) {
	body, err := h.usecase.Channels(c.Request.Context())
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

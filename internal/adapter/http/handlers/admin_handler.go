package handlers

import (
	"net/http"

	"topup_store/internal/adapter/http/dto/request"
	"topup_store/internal/adapter/http/dto/response"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminPasswordHeader carries the shared admin password on every admin call.
const AdminPasswordHeader = "X-Admin-Password"

type AdminHandler struct {
	settings usecase.ISettingsUseCase
	catalog  usecase.ICatalogUseCase
}

func NewAdminHandler(settings usecase.ISettingsUseCase, catalog usecase.ICatalogUseCase) *AdminHandler {
	return &AdminHandler{settings: settings, catalog: catalog}
}

// RequireAdmin rejects requests without a valid admin password header.
func (h *AdminHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.settings.Authenticate(c.Request.Context(), c.GetHeader(AdminPasswordHeader)); err != nil {
			logger.L().Warnf("[admin][auth] rejected path=%s ip=%s", c.FullPath(), c.ClientIP())
			appErr := mapError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest("password required"))
		return
	}
	if err := h.settings.Authenticate(c.Request.Context(), req.Password); err != nil {
		logger.L().Warnf("[admin][auth] login failed ip=%s", c.ClientIP())
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Login success"})
}

func (h *AdminHandler) GetConfig(c *gin.Context) {
	ctx := c.Request.Context()
	cfg, err := h.settings.GetConfig(ctx)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	products, err := h.catalog.ListAll(ctx)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdminConfig(cfg, products))
}

func (h *AdminHandler) SaveConfig(c *gin.Context) {
	var req request.SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest("invalid settings payload"))
		return
	}
	if err := h.settings.SaveGeneral(c.Request.Context(), req.ToEntity()); err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Settings saved"})
}

func (h *AdminHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		writeError(c, invalidRequest("multipart field image is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	defer f.Close()

	uri, err := h.settings.EncodeImage(c.Request.Context(), f)
	if err != nil {
		logger.L().Warnf("[admin][upload] rejected filename=%s size=%d err=%v", fh.Filename, fh.Size, err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.UploadResponse{Success: true, URL: uri})
}

// SaveProducts takes a bare JSON array of products.
func (h *AdminHandler) SaveProducts(c *gin.Context) {
	var rows []request.ProductRequest
	if err := c.ShouldBindJSON(&rows); err != nil {
		writeError(c, invalidRequest("body must be an array of products"))
		return
	}
	n, err := h.catalog.SaveProducts(c.Request.Context(), request.ToProducts(rows))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Success: true, Count: n, Message: "Products saved"})
}

func (h *AdminHandler) SaveAssets(c *gin.Context) {
	var req request.SaveAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest("invalid assets payload"))
		return
	}
	if err := h.settings.SaveAssets(c.Request.Context(), req.ToEntity()); err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Assets saved"})
}

func (h *AdminHandler) SyncSupplier(c *gin.Context) {
	n, err := h.catalog.SyncFromSupplier(c.Request.Context())
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Success: true, Count: n, Message: "Sync complete"})
}

func (h *AdminHandler) DeleteAllProducts(c *gin.Context) {
	n, err := h.catalog.DeleteAll(c.Request.Context())
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Success: true, Count: n, Message: "Products deleted"})
}

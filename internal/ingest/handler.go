package ingest

import (
	"fmt"
	"net/http"

	"callscreen_backend/internal/bank"
	"callscreen_backend/platform/apperr"
	"callscreen_backend/platform/config"
	"callscreen_backend/platform/httpkit"
	"callscreen_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const clientListLimit = 20

// Handler handles ingestion HTTP requests.
type Handler struct {
	service *Service
	cfg     config.UploadConfig
	val     *validator.Validator
}

// NewHandler creates a new ingest handler.
func NewHandler(service *Service, cfg config.UploadConfig, val *validator.Validator) *Handler {
	return &Handler{service: service, cfg: cfg, val: val}
}

// HandleUpload ingests a pipe-delimited client export.
// POST /upload (multipart form, field "file", .txt only)
func (h *Handler) HandleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.HandleError(c, apperr.BadRequest("aucun fichier"))
		return
	}

	if err := h.val.Var(fileHeader.Filename, "required,endswith=.txt"); err != nil {
		httpkit.HandleError(c, apperr.Validation("fichier .txt uniquement"))
		return
	}
	if fileHeader.Size > h.cfg.GetUploadMaxBytes() {
		httpkit.HandleError(c, apperr.Validation("fichier trop volumineux"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, "lecture du fichier impossible", err))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := decodeUpload(file, h.cfg.GetUploadMaxBytes())
	if err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindBadRequest, "décodage du fichier impossible", err))
		return
	}

	result := h.service.Ingest(c.Request.Context(), fileHeader.Filename, content)

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"clients":        result.Stored,
		"banks_detected": result.BanksDetected,
		"time":           fmt.Sprintf("%.2fs", result.Elapsed.Seconds()),
	})
}

// HandleListClients returns the first records of the directory.
// GET /clients
func (h *Handler) HandleListClients(c *gin.Context) {
	records := h.service.Clients(clientListLimit)
	c.JSON(http.StatusOK, gin.H{
		"total":   h.service.Stats().TotalClients,
		"clients": records,
		"limit":   clientListLimit,
	})
}

// HandleSearch resolves one phone number.
// GET /search/:phone
func (h *Handler) HandleSearch(c *gin.Context) {
	record := h.service.Search(c.Param("phone"))
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"client": record,
		"found":  record.Known(),
	})
}

// HandleStats returns aggregate directory statistics.
// GET /stats
func (h *Handler) HandleStats(c *gin.Context) {
	stats := h.service.Stats()
	c.JSON(http.StatusOK, gin.H{
		"total_clients":  stats.TotalClients,
		"banks_detected": stats.BanksDetected,
		"last_upload":    stats.LastUpload,
		"filename":       stats.Filename,
		"top_banks":      stats.TopBanks,
		"top_cities":     stats.TopCities,
		"iban_detector_stats": gin.H{
			"total_banks_in_database": bank.TableSize(),
			"credit_agricole_caisses": bank.CreditAgricoleCount(),
			"other_banks":             bank.GeneralCount(),
		},
	})
}

// HandleClear empties the directory.
// GET /clear (the monitoring tooling calls this with GET)
func (h *Handler) HandleClear(c *gin.Context) {
	removed := h.service.Clear(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":            "success",
		"clients_removed":   removed,
		"clients_remaining": 0,
	})
}

// HandleListBanks dumps the branch-code table.
// GET /banks
func (h *Handler) HandleListBanks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_banks": bank.TableSize(),
		"credit_agricole": gin.H{
			"count":   bank.CreditAgricoleCount(),
			"caisses": bank.CreditAgricoleNames(),
		},
		"other_banks": gin.H{
			"count": bank.GeneralCount(),
			"banks": bank.GeneralNames(),
		},
		"all_codes": bank.Table(),
	})
}

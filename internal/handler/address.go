package handler

import (
	"net/http"
	"strings"

	"github.com/yethan4/shop-backend/internal/middleware"
	"github.com/yethan4/shop-backend/internal/models"
	"github.com/yethan4/shop-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddressHandler serves the address get-or-create endpoint.
type AddressHandler struct {
	DB *gorm.DB
}

func NewAddressHandler(db *gorm.DB) *AddressHandler {
	return &AddressHandler{DB: db}
}

type addressReq struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// CreateAddress returns the caller's address matching the given tuple,
// creating it if absent. The insert relies on the composite unique index
// rather than a check-then-insert, so concurrent identical requests cannot
// produce duplicate rows: the loser of the race reads the winner's row.
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	// trim only; matching is otherwise exact
	req.Street = strings.TrimSpace(req.Street)
	req.City = strings.TrimSpace(req.City)
	req.ZipCode = strings.TrimSpace(req.ZipCode)
	req.Country = strings.TrimSpace(req.Country)

	errs := util.FieldErrors{}
	required := []struct {
		field string
		value string
	}{
		{"street", req.Street},
		{"city", req.City},
		{"zip_code", req.ZipCode},
		{"country", req.Country},
	}
	for _, r := range required {
		if r.value == "" {
			errs.Add(r.field, "this field is required")
		}
	}
	if len(errs) > 0 {
		util.ValidationError(c, errs)
		return
	}

	address := models.Address{
		UserID:  user.ID,
		Street:  req.Street,
		City:    req.City,
		ZipCode: req.ZipCode,
		Country: req.Country,
	}

	created := true
	if err := h.DB.Create(&address).Error; err != nil {
		if !strings.Contains(err.Error(), "UNIQUE constraint failed") {
			util.Logger.Error("create address", zap.Error(err))
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create address failed")
			return
		}

		// identical tuple already exists for this user
		created = false
		err := h.DB.Where(
			"user_id = ? AND street = ? AND city = ? AND zip_code = ? AND country = ?",
			user.ID, req.Street, req.City, req.ZipCode, req.Country,
		).First(&address).Error
		if err != nil {
			util.Logger.Error("find existing address", zap.Error(err))
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create address failed")
			return
		}
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	util.Success(c, status, util.Response{
		"created": created,
		"address": gin.H{
			"id":       address.ID,
			"street":   address.Street,
			"city":     address.City,
			"zip_code": address.ZipCode,
			"country":  address.Country,
		},
	})
}

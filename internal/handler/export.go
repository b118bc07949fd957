package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/yethan4/shop-backend/internal/middleware"
	"github.com/yethan4/shop-backend/internal/models"
	"github.com/yethan4/shop-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler lets a user download their profile and addresses.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var addressExportHeader = []string{"Street", "City", "Zip code", "Country", "Added"}

func (h *ExportHandler) userAddresses(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := h.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&addresses).Error
	return addresses, err
}

// ExportCSV streams the caller's account data as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	addresses, err := h.userAddresses(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query addresses failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"account_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Username", "Email", "First name", "Last name", "Phone number"})
	writer.Write([]string{user.Username, user.Email, user.FirstName, user.LastName, user.PhoneNumber})
	writer.Write(nil)

	writer.Write(addressExportHeader)
	for _, a := range addresses {
		writer.Write([]string{
			a.Street,
			a.City,
			a.ZipCode,
			a.Country,
			a.CreatedAt.Format("2006-01-02"),
		})
	}
}

// ExportXLSX streams the caller's account data as an XLSX workbook with a
// profile sheet and an addresses sheet.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	addresses, err := h.userAddresses(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query addresses failed")
		return
	}

	f := excelize.NewFile()

	profileSheet := "Profile"
	index, err := f.NewSheet(profileSheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)

	profile := [][2]string{
		{"Username", user.Username},
		{"Email", user.Email},
		{"First name", user.FirstName},
		{"Last name", user.LastName},
		{"Phone number", user.PhoneNumber},
	}
	for i, row := range profile {
		f.SetCellValue(profileSheet, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(profileSheet, fmt.Sprintf("B%d", i+1), row[1])
	}
	f.SetColWidth(profileSheet, "A", "A", 15)
	f.SetColWidth(profileSheet, "B", "B", 30)

	addrSheet := "Addresses"
	if _, err := f.NewSheet(addrSheet); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	for i, head := range addressExportHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(addrSheet, cell, head)
	}
	for idx, a := range addresses {
		row := idx + 2
		f.SetCellValue(addrSheet, fmt.Sprintf("A%d", row), a.Street)
		f.SetCellValue(addrSheet, fmt.Sprintf("B%d", row), a.City)
		f.SetCellValue(addrSheet, fmt.Sprintf("C%d", row), a.ZipCode)
		f.SetCellValue(addrSheet, fmt.Sprintf("D%d", row), a.Country)
		f.SetCellValue(addrSheet, fmt.Sprintf("E%d", row), a.CreatedAt.Format("2006-01-02"))
	}
	f.SetColWidth(addrSheet, "A", "A", 30)
	f.SetColWidth(addrSheet, "B", "E", 15)

	f.DeleteSheet("Sheet1")

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"account_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

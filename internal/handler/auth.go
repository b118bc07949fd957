package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/yethan4/shop-backend/internal/config"
	"github.com/yethan4/shop-backend/internal/models"
	"github.com/yethan4/shop-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves registration and token issuance/refresh.
type AuthHandler struct {
	DB         *gorm.DB
	JWT        config.JWTConfig
	BcryptCost int
}

func NewAuthHandler(db *gorm.DB, jwtCfg config.JWTConfig, bcryptCost int) *AuthHandler {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{
		DB:         db,
		JWT:        jwtCfg,
		BcryptCost: bcryptCost,
	}
}

func (h *AuthHandler) accessTTL() time.Duration {
	if h.JWT.AccessExpireMins <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(h.JWT.AccessExpireMins) * time.Minute
}

func (h *AuthHandler) refreshTTL() time.Duration {
	if h.JWT.RefreshExpireHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(h.JWT.RefreshExpireHours) * time.Hour
}

// ---------- registration ----------

type registerReq struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
}

// Register validates the payload, collecting every field error before
// responding, and creates the user on success. Uniqueness is checked up
// front for friendly errors, but the unique indexes are what actually
// guarantee it under concurrent registrations.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = util.NormalizeEmail(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	errs := util.FieldErrors{}

	required := []struct {
		field string
		value string
	}{
		{"username", req.Username},
		{"email", req.Email},
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"phone_number", req.PhoneNumber},
		{"password", req.Password},
		{"password2", req.Password2},
	}
	for _, r := range required {
		if r.value == "" {
			errs.Add(r.field, "this field is required")
		}
	}

	// per-field validators stop at the field's first failure
	if !errs.Has("email") {
		if err := util.ValidateEmail(req.Email); err != nil {
			errs.Add("email", err.Error())
		} else {
			taken, err := h.columnTaken("email", req.Email)
			if err != nil {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query user failed")
				return
			}
			if taken {
				errs.Add("email", "an account with this email already exists")
			}
		}
	}

	if !errs.Has("username") {
		taken, err := h.columnTaken("username", req.Username)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query user failed")
			return
		}
		if taken {
			errs.Add("username", "an account with this username already exists")
		}
	}

	if !errs.Has("phone_number") {
		if err := util.ValidatePhoneNumber(req.PhoneNumber); err != nil {
			errs.Add("phone_number", err.Error())
		} else {
			taken, err := h.columnTaken("phone_number", req.PhoneNumber)
			if err != nil {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query user failed")
				return
			}
			if taken {
				errs.Add("phone_number", "an account with this phone number already exists")
			}
		}
	}

	if !errs.Has("password") {
		if err := util.ValidatePassword(req.Password); err != nil {
			errs.Add("password", err.Error())
		} else if req.Password2 != "" && req.Password != req.Password2 {
			// cross-field check, reported on the password field
			errs.Add("password", "passwords do not match")
		}
	}

	if len(errs) > 0 {
		util.ValidationError(c, errs)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "hash password failed")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		// a concurrent registration may win the unique index race between
		// the pre-checks above and this insert
		if field, ok := duplicateUserField(err); ok {
			errs.Add(field, "an account with this "+strings.ReplaceAll(field, "_", " ")+" already exists")
			util.ValidationError(c, errs)
			return
		}
		util.Logger.Error("create user", zap.Error(err))
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create user failed")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"username":   user.Username,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

func (h *AuthHandler) columnTaken(column, value string) (bool, error) {
	var count int64
	err := h.DB.Model(&models.User{}).
		Where(column+" = ?", value).
		Count(&count).Error
	return count > 0, err
}

// duplicateUserField maps a users-table unique violation to the offending
// request field.
func duplicateUserField(err error) (string, bool) {
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return "", false
	}
	for _, column := range []string{"email", "username", "phone_number"} {
		if strings.Contains(msg, "users."+column) {
			return column, true
		}
	}
	return "", false
}

// ---------- token issuance ----------

type tokenReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Token verifies email + password and returns an access/refresh token pair.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "email and password are required")
		return
	}

	req.Email = util.NormalizeEmail(req.Email)

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "no active account found with the given credentials")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query user failed")
		}
		return
	}

	if !user.IsActive {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "no active account found with the given credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "no active account found with the given credentials")
		return
	}

	access, err := util.GenerateAccessToken(h.JWT.Secret, h.JWT.Issuer, user.ID, h.accessTTL())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "generate token failed")
		return
	}

	refreshTTL := h.refreshTTL()
	refresh, jti, err := util.GenerateRefreshToken(h.JWT.Secret, h.JWT.Issuer, user.ID, refreshTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "generate token failed")
		return
	}

	session := models.RefreshSession{
		ID:        jti,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(refreshTTL),
	}
	if err := h.DB.Create(&session).Error; err != nil {
		util.Logger.Error("create refresh session", zap.Error(err))
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "generate token failed")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"access":  access,
		"refresh": refresh,
	})
}

// ---------- token refresh ----------

type refreshReq struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Refresh exchanges a valid refresh token for a new access token. The
// token's jti must still map to an unrevoked, unexpired session.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "refresh token is required")
		return
	}

	claims, err := util.ParseToken(h.JWT.Secret, req.Refresh, util.TokenTypeRefresh)
	if err != nil || claims.ID == "" {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired refresh token")
		return
	}

	var session models.RefreshSession
	if err := h.DB.First(&session, "id = ?", claims.ID).Error; err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired refresh token")
		return
	}
	if session.Revoked || time.Now().After(session.ExpiresAt) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired refresh token")
		return
	}

	var user models.User
	if err := h.DB.First(&user, session.UserID).Error; err != nil || !user.IsActive {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired refresh token")
		return
	}

	access, err := util.GenerateAccessToken(h.JWT.Secret, h.JWT.Issuer, user.ID, h.accessTTL())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "generate token failed")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"access": access,
	})
}

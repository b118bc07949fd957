package handler

import (
	"net/http"

	"github.com/yethan4/shop-backend/internal/middleware"
	"github.com/yethan4/shop-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the basic projection of the authenticated user.
// Phone number and password fields are never included here.
func CurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"username":   user.Username,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

// CurrentUserDetail returns the detail projection: basic plus phone number.
func CurrentUserDetail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"username":     user.Username,
		"email":        user.Email,
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"phone_number": user.PhoneNumber,
	})
}

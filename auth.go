package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "defaultsecret"
	}
	return []byte(secret)
}

func GenerateToken(userID string, role Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func parseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleClubPresident:
		return Role(s), true
	}
	return "", false
}

// ========================
// LOGIN
// ========================

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"` // username or email
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required"`
}

func LoginHandler(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}

		role, ok := parseRole(req.Role)
		if !ok {
			jsonError(c, http.StatusBadRequest, "role must be admin or clubPresident")
			return
		}

		session, err := s.Login(req.Identifier, req.Password, role)
		if err != nil {
			// One message for both unknown account and wrong password.
			jsonError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}

		token, err := GenerateToken(session.ID, session.Role)
		if err != nil {
			jsonError(c, http.StatusInternalServerError, "failed to generate token")
			return
		}

		// Do not echo the password back over the wire.
		session.Password = ""
		c.JSON(http.StatusOK, gin.H{"token": token, "user": session})
	}
}

// ========================
// REGISTRATION
// ========================

type RegisterRequest struct {
	Role            string `json:"role" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func RegisterHandler(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}

		role, ok := parseRole(req.Role)
		if !ok {
			jsonError(c, http.StatusBadRequest, "role must be admin or clubPresident")
			return
		}
		if req.Password != req.ConfirmPassword {
			jsonError(c, http.StatusBadRequest, "passwords do not match")
			return
		}

		user, err := s.Register(role, req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		user.Password = ""
		c.JSON(http.StatusCreated, gin.H{
			"message": "account created, you can now log in",
			"user":    user,
		})
	}
}

// ========================
// PASSWORD RECOVERY
// ========================

type RecoverRequest struct {
	Email string `json:"email" binding:"required"`
}

// RecoverHandler surfaces the stored password for a matching email. This
// mirrors the system's defined recovery contract; it is not a model for how
// recovery should work anywhere passwords are hashed.
func RecoverHandler(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecoverRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}

		user, err := s.RecoverPassword(req.Email)
		if err != nil {
			jsonError(c, http.StatusNotFound, "this email is not registered")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"username": user.Username,
			"email":    user.Email,
			"message":  "Hello " + user.Username + ", your current password is: " + user.Password,
		})
	}
}

func LogoutHandler(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// DeleteAccountHandler removes the acting user's own record and ends the
// session. Distinct from the team-management delete, which refuses the acting
// user.
func DeleteAccountHandler(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteAccount(sessionFrom(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
	}
}

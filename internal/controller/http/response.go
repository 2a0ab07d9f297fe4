package http

import (
	"time"

	"blog-api/internal/auth"
	"blog-api/internal/entity"

	"github.com/gin-gonic/gin"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatUser(u *entity.User) gin.H {
	response := gin.H{
		"id":        u.ID,
		"email":     u.Email,
		"name":      u.Name,
		"image":     u.Image,
		"role":      u.Role,
		"createdAt": formatTime(u.CreatedAt),
		"updatedAt": formatTime(u.UpdatedAt),
	}
	if u.EmailVerified != nil {
		response["emailVerified"] = formatTime(*u.EmailVerified)
	}
	return response
}

func formatAuthPayload(p *auth.Payload) gin.H {
	return gin.H{
		"token":        p.Token,
		"refreshToken": p.RefreshToken,
		"user":         formatUser(p.User),
	}
}

func formatMedia(m *entity.Media) gin.H {
	return gin.H{
		"id":        m.ID,
		"url":       m.URL,
		"type":      m.Type,
		"postId":    m.PostID,
		"userId":    m.UserID,
		"createdAt": formatTime(m.CreatedAt),
	}
}

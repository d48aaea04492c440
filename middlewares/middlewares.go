package middlewares

import (
	"net/http"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/config"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Message": "Silahkan Login Terlebih Dahulu!"})
			return
		}

		claims := &config.JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.NewValidationError("Metode Signing Tidak Valid", jwt.ValidationErrorSignatureInvalid)
			}
			return config.JWT_KEY, nil
		})

		if err != nil {
			v, _ := err.(*jwt.ValidationError)
			if v != nil && v.Errors == jwt.ValidationErrorExpired {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Message": "Silahkan Login Ulang Sesi Sudah Kadaluwarsa!!"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Message": "Token Tidak Valid!"})
			return
		}

		if !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Message": "Token Tidak Valid!"})
			return
		}

		var user models.User
		if err := models.DB.Where("username = ?", claims.Username).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Message": "Pengguna Tidak Ditemukan!"})
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// StaffOnly dipasang setelah AuthMiddleware.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("currentUser").(models.User)
		if !user.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"Message": "Anda tidak memiliki izin untuk aksi ini."})
			return
		}
		c.Next()
	}
}

func SuperuserOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("currentUser").(models.User)
		if !user.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"Message": "Anda tidak memiliki izin untuk aksi ini."})
			return
		}
		c.Next()
	}
}

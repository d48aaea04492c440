package authcontroller

import (
	"net/http"
	"net/mail"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/helper"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginInput struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type RegisterInput struct {
	Username  string `form:"username" json:"username"`
	Email     string `form:"email" json:"email"`
	Password  string `form:"password" json:"password"`
	Password2 string `form:"password2" json:"password2"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": err.Error()})
		return
	}

	var user models.User
	if err := models.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		switch err {
		case gorm.ErrRecordNotFound:
			c.JSON(http.StatusUnauthorized, gin.H{"Message": "Username atau Password Tidak Sesuai"})
			return
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
			return
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Message": "Username atau Password Tidak Sesuai"})
		return
	}

	token, err := helper.GenerateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.SetCookie("token", token, 86400, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"Message": "Login Berhasil!", "Token": token})
}

func Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"Message": "Logout Berhasil!"})
}

// Register membuat akun baru dan langsung meloginkannya.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": err.Error()})
		return
	}

	if input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"Message": "Username dan password wajib diisi."})
		return
	}
	if input.Password != input.Password2 {
		c.JSON(http.StatusBadRequest, gin.H{"Message": "Konfirmasi password tidak sama."})
		return
	}
	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"Message": "Format email tidak valid."})
			return
		}
	}

	var count int64
	models.DB.Model(&models.User{}).Where("username = ?", input.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"Message": "Username sudah terdaftar."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hash),
	}
	if err := models.DB.Create(&user).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			c.JSON(http.StatusBadRequest, gin.H{"Message": "Username sudah terdaftar."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	token, err := helper.GenerateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.SetCookie("token", token, 86400, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{"Message": "Pendaftaran berhasil.", "Token": token})
}

package usercontroller

import (
	"fmt"
	"net/http"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/models"

	"github.com/gin-gonic/gin"
)

func GetAllUser(c *gin.Context) {
	var users []models.User
	if err := models.DB.Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Users": users})
}

// HapusUser menghapus satu akun. Akun "admin" dikecualikan permanen,
// siapa pun pemanggilnya.
func HapusUser(c *gin.Context) {
	var user models.User
	if err := models.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Message": "User tidak ditemukan."})
		return
	}

	if user.Username == "admin" {
		c.JSON(http.StatusBadRequest, gin.H{"Message": "Akun admin tidak dapat dihapus."})
		return
	}

	if err := models.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": fmt.Sprintf("User %s berhasil dihapus.", user.Username)})
}

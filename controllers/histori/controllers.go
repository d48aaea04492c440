package historicontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/helper"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/models"

	"github.com/gin-gonic/gin"
)

const PageSize = 10

func GetAllHistori(c *gin.Context) {
	query := models.DB.Model(&models.Histori{})
	if q := c.Query("q"); q != "" {
		query = query.Where("LOWER(keterangan) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	page, totalPages, offset := helper.Paginate(total, PageSize, page)

	var histori []models.Histori
	err := query.Order("waktu desc").Offset(offset).Limit(PageSize).Find(&histori).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Histori":    histori,
		"Page":       page,
		"TotalPages": totalPages,
		"Total":      total,
	})
}

// Purge satu record histori. Penghapusan ini sendiri tidak dicatat.
func HapusHistori(c *gin.Context) {
	var histori models.Histori
	if err := models.DB.First(&histori, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Message": "Record histori tidak ditemukan."})
		return
	}

	if err := models.DB.Delete(&histori).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Record histori berhasil dihapus."})
}

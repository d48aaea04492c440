package pendudukcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/helper"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAllPenduduk(c *gin.Context) {
	var penduduk []models.Penduduk

	query := models.DB.Order("id")
	if q := c.Query("q"); q != "" {
		query = query.Where("LOWER(nama) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	if err := query.Find(&penduduk).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Penduduk": penduduk})
}

func ambilForm(c *gin.Context) (models.Penduduk, error) {
	p := models.Penduduk{
		Nik:          c.PostForm("nik"),
		NoKK:         c.PostForm("no_kk"),
		Nama:         c.PostForm("nama"),
		Alamat:       c.PostForm("alamat"),
		Rt:           c.PostForm("rt"),
		Rw:           c.PostForm("rw"),
		TanggalLahir: c.PostForm("tanggal_lahir"),
	}

	if p.Nik == "" || p.Nama == "" || p.Alamat == "" || p.Rt == "" || p.Rw == "" || p.TanggalLahir == "" {
		return p, errors.New("Semua field wajib diisi kecuali No. KK dan foto.")
	}
	if _, err := time.Parse("2006-01-02", p.TanggalLahir); err != nil {
		return p, errors.New("Format tanggal lahir tidak valid. Gunakan YYYY-MM-DD.")
	}
	return p, nil
}

func TambahPenduduk(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.User)

	penduduk, err := ambilForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": err.Error()})
		return
	}

	// Probe cepat untuk pesan yang ramah; index unik tetap jadi
	// penentu akhir kalau dua request balapan.
	var count int64
	models.DB.Model(&models.Penduduk{}).Where("nik = ?", penduduk.Nik).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"Message": "NIK sudah terdaftar."})
		return
	}

	if file, err := c.FormFile("foto"); err == nil {
		path, err := helper.SimpanFoto(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
			return
		}
		penduduk.Foto = path
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&penduduk).Error; err != nil {
			return err
		}
		keterangan := fmt.Sprintf("Menambahkan penduduk %s (NIK %s)", penduduk.Nama, penduduk.Nik)
		return models.CatatHistori(tx, currentUser, models.AksiTambah, penduduk.Id, keterangan)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"Message": "NIK sudah terdaftar."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"Message": "Data penduduk berhasil ditambahkan.", "Penduduk": penduduk})
}

func EditPenduduk(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.User)

	var penduduk models.Penduduk
	if err := models.DB.First(&penduduk, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Message": "Data penduduk tidak ditemukan."})
		return
	}

	masukan, err := ambilForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": err.Error()})
		return
	}

	// Nilai lama diambil sebelum field ditimpa, supaya keterangan
	// histori memuat nama dan NIK yang benar-benar lama.
	namaLama := penduduk.Nama
	nikLama := penduduk.Nik

	penduduk.Nik = masukan.Nik
	penduduk.NoKK = masukan.NoKK
	penduduk.Nama = masukan.Nama
	penduduk.Alamat = masukan.Alamat
	penduduk.Rt = masukan.Rt
	penduduk.Rw = masukan.Rw
	penduduk.TanggalLahir = masukan.TanggalLahir

	if file, err := c.FormFile("foto"); err == nil {
		path, err := helper.SimpanFoto(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
			return
		}
		penduduk.Foto = path
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&penduduk).Error; err != nil {
			return err
		}
		keterangan := fmt.Sprintf("Mengubah penduduk %s (NIK %s) menjadi %s", namaLama, nikLama, penduduk.Nama)
		return models.CatatHistori(tx, currentUser, models.AksiEdit, penduduk.Id, keterangan)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"Message": "NIK sudah terdaftar."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Data penduduk berhasil diperbarui.", "Penduduk": penduduk})
}

func HapusPenduduk(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.User)

	var penduduk models.Penduduk
	if err := models.DB.First(&penduduk, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Message": "Data penduduk tidak ditemukan."})
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		keterangan := fmt.Sprintf("Menghapus penduduk %s (NIK %s)", penduduk.Nama, penduduk.Nik)
		if err := models.CatatHistori(tx, currentUser, models.AksiHapus, penduduk.Id, keterangan); err != nil {
			return err
		}
		return tx.Delete(&penduduk).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Data penduduk berhasil dihapus."})
}

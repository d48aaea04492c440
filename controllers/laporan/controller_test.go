package laporancontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/config"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/helper"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/middlewares"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_KEY = []byte("kunci-test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Penduduk{}, &models.Histori{}))
	models.DB = db

	router := gin.New()
	api := router.Group("", middlewares.AuthMiddleware())
	api.GET("/export-excel/", ExportExcel)
	api.GET("/export-pdf/", ExportPDF)
	api.GET("/grafik-penduduk/", GrafikPenduduk)
	return router
}

func isiPenduduk(t *testing.T, rts ...string) {
	t.Helper()
	for i, rt := range rts {
		p := models.Penduduk{
			Nik:          string(rune('1'+i)) + "000000000000000",
			Nama:         "Warga",
			Alamat:       "Jl. Test",
			Rt:           rt,
			Rw:           "01",
			TanggalLahir: "1990-01-01",
		}
		require.NoError(t, models.DB.Create(&p).Error)
	}
}

func ambil(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	user := models.User{Username: "petugas"}
	if err := models.DB.Where("username = ?", "petugas").First(&user).Error; err != nil {
		require.NoError(t, models.DB.Create(&user).Error)
	}
	token, err := helper.GenerateToken("petugas")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGrafikPendudukPerRT(t *testing.T) {
	router := setupTest(t)
	isiPenduduk(t, "01", "01", "02")

	w := ambil(t, router, "/grafik-penduduk/")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Labels []string `json:"rt_labels"`
		Counts []int    `json:"rt_counts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"01", "02"}, body.Labels)
	assert.Equal(t, []int{2, 1}, body.Counts)
}

func TestGrafikUrutRTSebagaiString(t *testing.T) {
	router := setupTest(t)
	isiPenduduk(t, "2", "10", "10")

	w := ambil(t, router, "/grafik-penduduk/")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Labels []string `json:"rt_labels"`
		Counts []int    `json:"rt_counts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// Urutan leksikografis: "10" mendahului "2".
	assert.Equal(t, []string{"10", "2"}, body.Labels)
	assert.Equal(t, []int{2, 1}, body.Counts)
}

func TestExportExcel(t *testing.T) {
	router := setupTest(t)
	isiPenduduk(t, "01", "02")

	w := ambil(t, router, "/export-excel/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "data_penduduk.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Data Penduduk")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "NIK", rows[0][0])
	assert.Equal(t, "Warga", rows[1][2])
}

func TestExportPDF(t *testing.T) {
	router := setupTest(t)
	isiPenduduk(t, "01")

	w := ambil(t, router, "/export-pdf/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "data_penduduk.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

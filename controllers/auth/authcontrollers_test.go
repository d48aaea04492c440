package authcontroller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/config"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	router.POST("/login/", Login)
	router.POST("/register/", Register)
	return router
}

func kirimForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func formRegister() url.Values {
	return url.Values{
		"username":  {"warga1"},
		"email":     {"warga1@example.com"},
		"password":  {"rahasia123"},
		"password2": {"rahasia123"},
	}
}

func TestRegisterBerhasilLangsungLogin(t *testing.T) {
	router := setupTest(t)

	w := kirimForm(router, "/register/", formRegister())
	require.Equal(t, http.StatusCreated, w.Code)

	// Langsung login: cookie token ikut terpasang.
	cookies := w.Result().Cookies()
	var punyaToken bool
	for _, c := range cookies {
		if c.Name == "token" && c.Value != "" {
			punyaToken = true
		}
	}
	assert.True(t, punyaToken)

	var user models.User
	require.NoError(t, models.DB.Where("username = ?", "warga1").First(&user).Error)
	assert.NotEqual(t, "rahasia123", user.Password)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)
}

func TestRegisterPasswordTidakSama(t *testing.T) {
	router := setupTest(t)

	form := formRegister()
	form.Set("password2", "beda")
	w := kirimForm(router, "/register/", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var jumlah int64
	models.DB.Model(&models.User{}).Count(&jumlah)
	assert.Equal(t, int64(0), jumlah)
}

func TestRegisterUsernameSudahAda(t *testing.T) {
	router := setupTest(t)
	require.NoError(t, models.DB.Create(&models.User{Username: "warga1"}).Error)

	w := kirimForm(router, "/register/", formRegister())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEmailTidakValid(t *testing.T) {
	router := setupTest(t)

	form := formRegister()
	form.Set("email", "bukan-email")
	w := kirimForm(router, "/register/", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	router := setupTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, models.DB.Create(&models.User{Username: "warga1", Password: string(hash)}).Error)

	w := kirimForm(router, "/login/", url.Values{"username": {"warga1"}, "password": {"salah"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = kirimForm(router, "/login/", url.Values{"username": {"tidakada"}, "password": {"rahasia123"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = kirimForm(router, "/login/", url.Values{"username": {"warga1"}, "password": {"rahasia123"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Token")
}

package main

import (
	"log"
	"os"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/config"
	authcontroller "github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/controllers/auth"
	historicontroller "github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/controllers/histori"
	laporancontroller "github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/controllers/laporan"
	pendudukcontroller "github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/controllers/penduduk"
	usercontroller "github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/controllers/user"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/helper"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/middlewares"
	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	models.ConnectDatabase()

	router := gin.Default()
	router.MaxMultipartMemory = 8 << 20

	//Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Static("/media", helper.MediaDir())

	router.POST("/login/", authcontroller.Login)
	router.POST("/register/", authcontroller.Register)

	api := router.Group("", middlewares.AuthMiddleware())
	{
		api.GET("/", pendudukcontroller.GetAllPenduduk)
		api.POST("/tambah/", pendudukcontroller.TambahPenduduk)
		api.GET("/logout/", authcontroller.Logout)

		api.GET("/histori/", historicontroller.GetAllHistori)
		api.GET("/export-excel/", laporancontroller.ExportExcel)
		api.GET("/export-pdf/", laporancontroller.ExportPDF)
		api.GET("/grafik-penduduk/", laporancontroller.GrafikPenduduk)

		staff := api.Group("", middlewares.StaffOnly())
		{
			staff.POST("/edit/:id/", pendudukcontroller.EditPenduduk)
			staff.POST("/hapus/:id/", pendudukcontroller.HapusPenduduk)
			staff.POST("/hapus-histori/:id/", historicontroller.HapusHistori)
			staff.GET("/daftar-user/", usercontroller.GetAllUser)
		}

		super := api.Group("", middlewares.SuperuserOnly())
		{
			super.POST("/hapus-user/:id/", usercontroller.HapusUser)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server jalan di port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

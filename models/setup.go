package models

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("Link Database Tidak Ada!")
	}

	// TranslateError supaya pelanggaran index unik nik terbaca
	// sebagai gorm.ErrDuplicatedKey, bukan error driver mentah.
	db, err := gorm.Open(mysql.Open(dbURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Gagal Terhubung ke Database: %v", err)
	}

	if err := db.AutoMigrate(&User{}, &Penduduk{}, &Histori{}); err != nil {
		log.Fatalf("Gagal Migrasi Database: %v", err)
	}

	log.Println("Koneksi Database Berhasil.")
	DB = db
}

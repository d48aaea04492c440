package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AksiTambah = "Tambah"
	AksiEdit   = "Edit"
	AksiHapus  = "Hapus"
)

const SubjekPenduduk = "Penduduk"

// Histori mencatat siapa mengubah apa. Record user dihapus ->
// histori miliknya ikut terhapus (cascade).
type Histori struct {
	Id         int64     `gorm:"primaryKey" json:"id"`
	UserId     int64     `gorm:"index" json:"user_id"`
	User       User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Aksi       string    `gorm:"type:varchar(10)" json:"aksi"`
	SubjekTipe string    `gorm:"type:varchar(20)" json:"subjek_tipe"`
	SubjekId   int64     `json:"subjek_id"`
	Waktu      time.Time `json:"waktu"`
	Keterangan string    `gorm:"type:text" json:"keterangan"`
}

// CatatHistori dipanggil di dalam transaksi yang sama dengan
// mutasi penduduknya, supaya keduanya atomik.
func CatatHistori(tx *gorm.DB, actor User, aksi string, subjekId int64, keterangan string) error {
	return tx.Omit("User").Create(&Histori{
		UserId:     actor.Id,
		Aksi:       aksi,
		SubjekTipe: SubjekPenduduk,
		SubjekId:   subjekId,
		Waktu:      time.Now(),
		Keterangan: keterangan,
	}).Error
}

package models

type Penduduk struct {
	Id           int64  `gorm:"primaryKey" json:"id"`
	Nik          string `gorm:"type:varchar(16);uniqueIndex" json:"nik"`
	NoKK         string `gorm:"type:varchar(20)" json:"no_kk"`
	Nama         string `gorm:"type:varchar(100)" json:"nama"`
	Alamat       string `gorm:"type:text" json:"alamat"`
	Rt           string `gorm:"type:varchar(3)" json:"rt"`
	Rw           string `gorm:"type:varchar(3)" json:"rw"`
	TanggalLahir string `gorm:"type:date" json:"tanggal_lahir"`
	Foto         string `gorm:"type:varchar(255)" json:"foto"`
}

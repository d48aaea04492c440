package laporancontroller

import (
	"bytes"
	"net/http"

	"github.com/RifqiDzakwan22/Rekap-Data-Kelurahan/models"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

var kolomPenduduk = []string{"NIK", "No. KK", "Nama", "Alamat", "RT", "RW", "Tanggal Lahir"}

func ExportExcel(c *gin.Context) {
	var penduduk []models.Penduduk
	if err := models.DB.Order("id").Find(&penduduk).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	buf, err := buatExcel(penduduk)
	if err != nil {
		c.String(http.StatusInternalServerError, "Terjadi kesalahan saat membuat Excel")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=data_penduduk.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func buatExcel(penduduk []models.Penduduk) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Data Penduduk"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	for col, judul := range kolomPenduduk {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, judul); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for baris, p := range penduduk {
		nilai := []string{p.Nik, p.NoKK, p.Nama, p.Alamat, p.Rt, p.Rw, p.TanggalLahir}
		for col, v := range nilai {
			cell, err := excelize.CoordinatesToCellName(col+1, baris+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func ExportPDF(c *gin.Context) {
	var penduduk []models.Penduduk
	if err := models.DB.Order("id").Find(&penduduk).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Data Penduduk", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	lebar := []float64{35, 35, 45, 70, 15, 15, 30}

	pdf.SetFont("Arial", "B", 10)
	for i, judul := range kolomPenduduk {
		pdf.CellFormat(lebar[i], 8, judul, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, p := range penduduk {
		nilai := []string{p.Nik, p.NoKK, p.Nama, p.Alamat, p.Rt, p.Rw, p.TanggalLahir}
		for i, v := range nilai {
			pdf.CellFormat(lebar[i], 8, v, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		c.String(http.StatusInternalServerError, "Terjadi kesalahan saat membuat PDF")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=data_penduduk.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

type jumlahPerRT struct {
	Rt     string `json:"rt"`
	Jumlah int    `json:"jumlah"`
}

// GrafikPenduduk mengembalikan jumlah penduduk per RT untuk
// digambar jadi grafik batang. RT diurutkan sebagai string.
func GrafikPenduduk(c *gin.Context) {
	var data []jumlahPerRT
	err := models.DB.Model(&models.Penduduk{}).
		Select("rt, COUNT(*) as jumlah").
		Group("rt").
		Order("rt").
		Scan(&data).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	labels := make([]string, 0, len(data))
	counts := make([]int, 0, len(data))
	for _, d := range data {
		labels = append(labels, d.Rt)
		counts = append(counts, d.Jumlah)
	}

	c.JSON(http.StatusOK, gin.H{
		"rt_labels": labels,
		"rt_counts": counts,
	})
}

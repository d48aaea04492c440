package helper

// Paginate menghitung halaman efektif. Nomor halaman di luar
// jangkauan dijepit ke halaman valid terdekat, tidak jadi error.
func Paginate(total int64, pageSize, page int) (effectivePage, totalPages, offset int) {
	totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	effectivePage = page
	if effectivePage < 1 {
		effectivePage = 1
	}
	if effectivePage > totalPages {
		effectivePage = totalPages
	}

	offset = (effectivePage - 1) * pageSize
	return effectivePage, totalPages, offset
}

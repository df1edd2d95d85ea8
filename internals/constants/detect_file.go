package constants

// Pemetaan mimetype → ekstensi untuk file submission.
// Tabel ini tidak dipakai untuk menolak upload (upload tetap diterima
// apa pun tipenya); hanya memberi ekstensi pada nama file acak.
var SubmissionFileExtensions = map[string]string{
	"text/plain":         "txt",
	"application/msword": "doc",
	"application/pdf":    "pdf",
}

// SubmissionExtensionFor mengembalikan ekstensi untuk mimetype yang
// dikenal, atau "" kalau tidak ada di tabel.
func SubmissionExtensionFor(mimetype string) string {
	return SubmissionFileExtensions[mimetype]
}

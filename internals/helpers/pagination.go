// file: internals/helpers/pagination.go
package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ResolvePage membaca ?page= (1-based) dan menormalisasi.
func ResolvePage(c *fiber.Ctx) int {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = 1
	}
	return page
}

// TotalPages menghitung jumlah halaman (ceil), minimal 1.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// BuildPageLinks membangun link hint next/last/prev/first untuk list
// endpoint. Hanya mengisi arah yang memang ada.
func BuildPageLinks(basePath string, page, lastPage int) fiber.Map {
	links := fiber.Map{}
	if page < lastPage {
		links["nextPage"] = fmt.Sprintf("%s?page=%d", basePath, page+1)
		links["lastPage"] = fmt.Sprintf("%s?page=%d", basePath, lastPage)
	}
	if page > 1 {
		links["prevPage"] = fmt.Sprintf("%s?page=%d", basePath, page-1)
		links["firstPage"] = fmt.Sprintf("%s?page=1", basePath)
	}
	return links
}

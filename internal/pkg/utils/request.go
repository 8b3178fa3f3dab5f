package utils

import (
	"advice-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

func BuildQueryParamsRequest(r *http.Request) *requests.QueryParams {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.QueryParams{
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		Page:     page,
		PageSize: pageSize,
	}
}

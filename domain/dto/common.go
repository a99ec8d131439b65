package dto

// PageResponse หน้าผลลัพธ์แบบ 0-based
type PageResponse struct {
	Content       any   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPageResponse(content any, page, size int, total int64) *PageResponse {
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &PageResponse{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

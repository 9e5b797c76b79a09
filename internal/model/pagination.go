package model

// Pagination 结构体表示统一的分页响应信息
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// Page 是列表接口的统一响应信封
type Page struct {
	Items interface{} `json:"items"`
	Pagination
}

// NewPage 组装分页响应信封
func NewPage(items interface{}, total, page, limit int) Page {
	return Page{
		Items:      items,
		Pagination: NewPagination(total, page, limit),
	}
}

// NewPagination 计算分页信息，total_pages 向上取整
func NewPagination(total, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

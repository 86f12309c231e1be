package models

import "math"

// PaginationParams ค่าการแบ่งหน้า ค้นหา และเรียงลำดับ สำหรับรายการผู้เข้าร่วม/เจ้าหน้าที่
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"20"`
	Search string `json:"search" query:"search" example:""` // ค้นหาจากชื่อ/หน่วยงาน
	SortBy string `json:"sortBy" query:"sortBy" example:"name"`
	Order  string `json:"order" query:"order" example:"asc"`
}

// DefaultPagination ค่าตั้งต้น
func DefaultPagination() PaginationParams {
	return PaginationParams{Page: 1, Limit: 20, SortBy: "_id", Order: "asc"}
}

// GetSkip จำนวนรายการที่ต้องข้าม
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// SortOrder ทิศทางการเรียง (1 = asc, -1 = desc)
func (p *PaginationParams) SortOrder() int {
	if p.Order == "desc" {
		return -1
	}
	return 1
}

// PaginatedResponse โครงสร้างตอบกลับแบบแบ่งหน้า
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

// NewPaginatedResponse สร้างการตอบกลับแบบแบ่งหน้า
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}
	return &PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
	}
}

package template

type CreateTemplateInput struct {
	Name         string                 `json:"name" binding:"required"`
	Description  *string                `json:"description"`
	Type         string                 `json:"type"`
	Version      string                 `json:"version"`
	FormData     map[string]interface{} `json:"formData"`
	IsActive     *bool                  `json:"isActive"`
	FormCategory string                 `json:"formCategory" binding:"omitempty,oneof=template client"`
}

type UpdateTemplateInput struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Type        *string                `json:"type"`
	Version     *string                `json:"version"`
	FormData    map[string]interface{} `json:"formData"`
	IsActive    *bool                  `json:"isActive"`
}

type ListTemplatesQuery struct {
	Search string `form:"search"`
	Type   string `form:"type"`
}

type ListSubmissionsQuery struct {
	Search      string `form:"search"`
	Status      string `form:"status"`
	DateFrom    string `form:"dateFrom"`
	DateTo      string `form:"dateTo"`
	SubmittedBy string `form:"submittedBy"`
}

package template

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Category string

const (
	CategoryTemplate Category = "template"
	CategoryClient   Category = "client"
)

// FormTemplate is a reusable form definition. FormData holds the field
// schema as JSON; deletions fall back to deactivation once assignments
// reference the template.
type FormTemplate struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Description  *string        `gorm:"type:text" json:"description"`
	Type         string         `gorm:"size:100;default:'Input'" json:"type"`
	Version      string         `gorm:"size:50;default:'1.0'" json:"version"`
	FormData     datatypes.JSON `gorm:"column:form_data" json:"form_data"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	FormCategory Category       `gorm:"type:form_category;default:'template';column:form_category" json:"form_category"`
	CreatedBy    uint           `json:"created_by"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FormTemplate) TableName() string {
	return "form_templates"
}

// Field is one entry of a template's field schema.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Type     string `json:"type,omitempty"`
	Required bool   `json:"required,omitempty"`
}

type Section struct {
	Title  string  `json:"title,omitempty"`
	Fields []Field `json:"fields"`
}

// Schema is the parsed form of FormData. A template carries either a flat
// field list or a list of sections.
type Schema struct {
	Fields   []Field   `json:"fields,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

// ParseSchema decodes a template's form_data column. A nil or empty column
// yields an empty schema rather than an error.
func ParseSchema(raw datatypes.JSON) (Schema, error) {
	var s Schema
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// FieldCount returns the number of fields the schema declares, summing
// section field lists when the flat list is absent. Zero means the schema
// is not countable.
func (s Schema) FieldCount() int {
	if len(s.Fields) > 0 {
		return len(s.Fields)
	}
	total := 0
	for _, sec := range s.Sections {
		total += len(sec.Fields)
	}
	return total
}

// RequiredFields lists every field marked required, across sections too.
func (s Schema) RequiredFields() []Field {
	var required []Field
	for _, f := range s.Fields {
		if f.Required {
			required = append(required, f)
		}
	}
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if f.Required {
				required = append(required, f)
			}
		}
	}
	return required
}

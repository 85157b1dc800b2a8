package models

// PortfolioItem is a dress shown in the studio portfolio.
type PortfolioItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Category    string  `gorm:"not null;size:100;index" json:"category"`
	ImageURL    string  `gorm:"column:image_url;not null" json:"imageUrl"`
	Description *string `json:"description"`
	Featured    bool    `gorm:"not null;default:false" json:"featured"`
}

func (PortfolioItem) TableName() string {
	return "portfolio"
}

// PortfolioItemPatch carries a partial update. Nil fields are left untouched.
type PortfolioItemPatch struct {
	Name        *string
	Category    *string
	ImageURL    *string
	Description *string
	Featured    *bool

	// ClearDescription sets the description to null.
	ClearDescription bool
}

// IsEmpty reports whether the patch changes nothing.
func (p PortfolioItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.ImageURL == nil && p.Description == nil && p.Featured == nil && !p.ClearDescription
}

// Apply copies the present fields of p onto item.
func (p PortfolioItemPatch) Apply(item *PortfolioItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.Description != nil {
		d := *p.Description
		item.Description = &d
	}
	if p.ClearDescription {
		item.Description = nil
	}
	if p.Featured != nil {
		item.Featured = *p.Featured
	}
}

// Columns maps the present fields of p to their column names.
func (p PortfolioItemPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.ImageURL != nil {
		cols["image_url"] = *p.ImageURL
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.ClearDescription {
		cols["description"] = nil
	}
	if p.Featured != nil {
		cols["featured"] = *p.Featured
	}
	return cols
}

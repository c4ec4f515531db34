package domain

import "time"

// Link categories. The set is fixed; anything else is rejected at create/update.
const (
	CategoryGeneral       = "General"
	CategoryDevelopment   = "Development"
	CategoryProductivity  = "Productivity"
	CategoryCommunication = "Communication"
	CategoryHR            = "HR"
	CategoryMarketing     = "Marketing"
	CategoryFinance       = "Finance"
)

// Categories lists every valid link category.
var Categories = []string{
	CategoryGeneral,
	CategoryDevelopment,
	CategoryProductivity,
	CategoryCommunication,
	CategoryHR,
	CategoryMarketing,
	CategoryFinance,
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Link represents a go-link: a short keyword mapped to a destination URL.
// The keyword unique index deliberately ignores is_active, so soft-deleted
// keywords stay reserved forever.
type Link struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Keyword     string    `gorm:"column:keyword;size:50;uniqueIndex;not null" json:"keyword"`
	URL         string    `gorm:"column:url;type:text;not null" json:"url"`
	Title       *string   `gorm:"column:title;size:200" json:"title,omitempty"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	Category    string    `gorm:"column:category;size:50;not null;default:General" json:"category"`
	CreatedBy   string    `gorm:"column:created_by;size:100;not null;default:anonymous" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	// Relationships
	Clicks []Click `gorm:"foreignKey:LinkID" json:"clicks,omitempty"`
}

// TableName returns the table name for GORM.
func (Link) TableName() string {
	return "links"
}

// DisplayTitle returns the title, falling back to the keyword when unset.
func (l *Link) DisplayTitle() string {
	if l.Title != nil && *l.Title != "" {
		return *l.Title
	}
	return l.Keyword
}

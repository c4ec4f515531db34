package domain

import "time"

// Click represents one recorded resolution of a go-link. Rows are append-only:
// they are written inside the redirect transaction and never mutated or deleted,
// so click counts are always derivable by counting.
type Click struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	LinkID    int64     `gorm:"column:link_id;not null;index" json:"link_id"`
	ClickedAt time.Time `gorm:"column:clicked_at;autoCreateTime;index" json:"clicked_at"`
	IPAddress *string   `gorm:"column:ip_address;size:45" json:"ip_address,omitempty"`
	UserAgent *string   `gorm:"column:user_agent;type:text" json:"user_agent,omitempty"`
	Referrer  *string   `gorm:"column:referrer;type:text" json:"referrer,omitempty"`

	// Relationships
	Link *Link `gorm:"foreignKey:LinkID" json:"link,omitempty"`
}

// TableName returns the table name for GORM.
func (Click) TableName() string {
	return "clicks"
}

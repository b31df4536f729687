package models

import "time"

// Post represents a single lost-dog report.
// The password column holds a bcrypt hash of the owner's secret and is
// never serialized in API responses.
type Post struct {
	ID                uint        `gorm:"primarykey" json:"id"`
	PetName           string      `gorm:"not null" json:"pet_name"`
	Description       string      `gorm:"not null" json:"description"`
	Breed             string      `gorm:"not null" json:"breed"`
	Color             string      `gorm:"not null" json:"color"`
	Neighborhood      string      `gorm:"not null" json:"neighborhood"`
	Accessory         string      `json:"accessory"`
	LocationReference string      `json:"location_reference"`
	Whatsapp          string      `json:"whatsapp"`
	Instagram         string      `json:"instagram"`
	PetAge            string      `json:"pet_age"`
	Address           string      `json:"address"`
	Password          string      `gorm:"not null" json:"-"`
	CreatedAt         time.Time   `json:"created_at"`
	Images            []PostImage `gorm:"foreignKey:PostID" json:"images"`
}

func (Post) TableName() string { return "lost_dog_posts" }

// PostImage is one stored image reference (hosted URL or local path).
// Images have no lifecycle of their own: they are created and deleted
// together with their Post.
type PostImage struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	PostID   uint   `gorm:"not null;index" json:"-"`
	ImageURL string `gorm:"not null" json:"url"`
}

func (PostImage) TableName() string { return "post_images" }

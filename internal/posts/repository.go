package posts

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/computaria/cachorro-sumido/internal/models"
)

// Repository is the only component that talks to the database on behalf
// of posts. Every mutation runs inside a single transaction so a reader
// never observes a post with a partially written image set.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Filters narrows List results. All fields are optional substring
// matches, combined with AND.
type Filters struct {
	Breed        string
	Neighborhood string
	Color        string
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping() error {
	return r.db.Exec("SELECT 1").Error
}

// List returns every post with its images, newest first.
func (r *Repository) List(f Filters) ([]models.Post, error) {
	q := r.db.Preload("Images", imageOrder).Order("created_at desc")
	if f.Breed != "" {
		q = q.Where("LOWER(breed) LIKE ?", "%"+strings.ToLower(f.Breed)+"%")
	}
	if f.Neighborhood != "" {
		q = q.Where("LOWER(neighborhood) LIKE ?", "%"+strings.ToLower(f.Neighborhood)+"%")
	}
	if f.Color != "" {
		q = q.Where("LOWER(color) LIKE ?", "%"+strings.ToLower(f.Color)+"%")
	}
	result := []models.Post{}
	if err := q.Find(&result).Error; err != nil {
		return nil, err
	}
	for i := range result {
		if result[i].Images == nil {
			result[i].Images = []models.PostImage{}
		}
	}
	return result, nil
}

// GetByID returns one post with its images, or ErrNotFound.
func (r *Repository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Images", imageOrder).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if post.Images == nil {
		post.Images = []models.PostImage{}
	}
	return &post, nil
}

// Create inserts a post and its images atomically. The plaintext secret
// is bcrypt-hashed before it touches the database; the image rows are
// inserted in submission order. Any failure rolls the whole thing back.
func (r *Repository) Create(in CreateInput) (*models.Post, error) {
	var post models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		post = models.Post{
			PetName:           in.PetName,
			Description:       in.Description,
			Breed:             in.Breed,
			Color:             in.Color,
			Neighborhood:      in.Neighborhood,
			Accessory:         in.Accessory,
			LocationReference: in.LocationReference,
			Whatsapp:          in.Whatsapp,
			Instagram:         in.Instagram,
			PetAge:            in.PetAge,
			Address:           in.Address,
			Password:          string(hash),
		}
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		for _, url := range in.ImageURLs {
			img := models.PostImage{PostID: post.ID, ImageURL: url}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			post.Images = append(post.Images, img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update verifies the secret and applies only the fields present in the
// input; absent fields keep their stored values. When an image list is
// present the whole prior set is deleted and the new one inserted in
// submitted order, all within the same transaction. The secret itself is
// not updatable.
func (r *Repository) Update(id uint, in UpdateInput) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := bcrypt.CompareHashAndPassword([]byte(post.Password), []byte(in.Password)); err != nil {
			return ErrWrongPassword
		}

		updates := map[string]interface{}{}
		setIfPresent(updates, "pet_name", in.PetName)
		setIfPresent(updates, "description", in.Description)
		setIfPresent(updates, "breed", in.Breed)
		setIfPresent(updates, "color", in.Color)
		setIfPresent(updates, "neighborhood", in.Neighborhood)
		setIfPresent(updates, "accessory", in.Accessory)
		setIfPresent(updates, "location_reference", in.LocationReference)
		setIfPresent(updates, "whatsapp", in.Whatsapp)
		setIfPresent(updates, "instagram", in.Instagram)
		setIfPresent(updates, "pet_age", in.PetAge)
		setIfPresent(updates, "address", in.Address)
		if len(updates) > 0 {
			if err := tx.Model(&post).Updates(updates).Error; err != nil {
				return err
			}
		}

		if in.ImageURLs != nil {
			if err := tx.Where("post_id = ?", id).Delete(&models.PostImage{}).Error; err != nil {
				return err
			}
			for _, url := range *in.ImageURLs {
				img := models.PostImage{PostID: id, ImageURL: url}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Delete verifies the secret, then removes the post's images and the
// post itself atomically. It returns the removed image URLs so the
// caller can clean up locally stored files after the commit.
func (r *Repository) Delete(id uint, password string) ([]string, error) {
	var urls []string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Preload("Images").First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := bcrypt.CompareHashAndPassword([]byte(post.Password), []byte(password)); err != nil {
			return ErrWrongPassword
		}
		for _, img := range post.Images {
			urls = append(urls, img.ImageURL)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return urls, nil
}

func setIfPresent(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}

// imageOrder keeps preloaded image sets in insertion order.
func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"portalberita/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Categories every generated article is drawn from.
var categories = []string{
	"Politik", "Ekonomi", "Teknologi", "Olahraga",
	"Entertainment", "Pendidikan", "Kesehatan",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. The password is always
// "password" so seeded accounts can be used against the login endpoint.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: string(hashed),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildNews constructs an article for the given author without persisting it.
func (f *Factory) BuildNews(author *models.User, overrides ...func(*models.News)) *models.News {
	news := &models.News{
		UserID:      author.ID,
		Title:       gofakeit.Sentence(6),
		Content:     gofakeit.Paragraph(3, 4, 8, "\n\n"),
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/640/480", gofakeit.UUID()),
		Category:    categories[f.rng.Intn(len(categories))],
		IsPublished: true,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	news.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
	news.UpdatedAt = news.CreatedAt

	for _, override := range overrides {
		override(news)
	}
	return news
}

// CreateNews constructs and persists an article for the given author.
func (f *Factory) CreateNews(author *models.User, overrides ...func(*models.News)) (*models.News, error) {
	news := f.BuildNews(author, overrides...)
	if err := f.db.Create(news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

// CreateComment constructs and persists a comment by the given user on the
// given article. Comments are dated after the article they belong to.
func (f *Factory) CreateComment(user *models.User, news *models.News, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:  user.ID,
		NewsID:  news.ID,
		Content: gofakeit.Sentence(f.rng.Intn(12) + 4),
	}

	age := time.Since(news.CreatedAt)
	if age > 0 {
		comment.CreatedAt = news.CreatedAt.Add(time.Duration(f.rng.Int63n(int64(age))))
		comment.UpdatedAt = comment.CreatedAt
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

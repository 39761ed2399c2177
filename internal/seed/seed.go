package seed

import (
	"fmt"
	"log"

	"portalberita/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers    int
	NumNews     int
	ShouldClean bool
}

// Seed populates the database with an admin account, regular users,
// published articles and comment threads.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d articles...", opts.NumUsers, opts.NumNews)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	factory := NewFactory(db)

	admin, err := createAdmin(db)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Printf("✓ admin account ready (%s)", admin.Email)

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d regular users created", len(users))

	news, err := createNews(factory, admin, users, opts.NumNews)
	if err != nil {
		return fmt.Errorf("failed to create articles: %w", err)
	}
	log.Printf("✓ %d articles created", len(news))

	total, err := createComments(factory, admin, users, news)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", total)

	log.Println("Seeding complete.")
	return nil
}

// clearData removes all seeded rows, children first to satisfy foreign keys.
func clearData(db *gorm.DB) error {
	for _, model := range []any{&models.Comment{}, &models.News{}, &models.User{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// createAdmin creates (or reuses) the well-known admin account.
func createAdmin(db *gorm.DB) (*models.User, error) {
	var admin models.User
	err := db.Where("email = ?", "admin@example.com").First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin = models.User{
		Name:     "Admin User",
		Email:    "admin@example.com",
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// createNews gives the admin a fixed share of articles and spreads the rest
// across the regular users round-robin.
func createNews(factory *Factory, admin *models.User, users []*models.User, count int) ([]*models.News, error) {
	adminShare := count / 3
	if adminShare < 1 {
		adminShare = 1
	}

	news := make([]*models.News, 0, count)
	for i := 0; i < count; i++ {
		author := admin
		if i >= adminShare && len(users) > 0 {
			author = users[(i-adminShare)%len(users)]
		}
		article, err := factory.CreateNews(author)
		if err != nil {
			return nil, err
		}
		news = append(news, article)
	}
	return news, nil
}

// createComments adds a small thread to every article. The admin chimes in on
// most of them.
func createComments(factory *Factory, admin *models.User, users []*models.User, news []*models.News) (int, error) {
	total := 0
	commenters := append([]*models.User{admin}, users...)

	for _, article := range news {
		n := factory.rng.Intn(7) + 2
		for i := 0; i < n; i++ {
			commenter := commenters[factory.rng.Intn(len(commenters))]
			if _, err := factory.CreateComment(commenter, article); err != nil {
				return total, err
			}
			total++
		}

		if factory.rng.Float64() < 0.7 {
			if _, err := factory.CreateComment(admin, article); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

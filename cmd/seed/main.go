package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"blog-api/internal/apperror"
	"blog-api/internal/auth"
	"blog-api/internal/entity"
	"blog-api/internal/model"
	"blog-api/internal/repo/persistent"
	"blog-api/pkg/config"
	"blog-api/pkg/database"
	"blog-api/pkg/logger"
	"blog-api/pkg/s3"

	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "Password123!"

func main() {
	var withImages bool
	flag.BoolVar(&withImages, "images", false, "Download cover images from CATAAS and upload them to S3")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewForEnv(cfg.AppEnv)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	var s3Client *s3.Client
	if withImages {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
	}

	s := &seeder{
		repos:      persistent.NewRepositories(db),
		s3Client:   s3Client,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
	if err := s.run(context.Background()); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

type seeder struct {
	repos      *persistent.Repositories
	s3Client   *s3.Client
	httpClient *http.Client
	log        *logger.Logger
}

func (s *seeder) run(ctx context.Context) error {
	testUsers := []struct {
		email string
		name  string
		role  entity.Role
	}{
		{"alice@test.com", "Alice", entity.RoleSuperAdmin},
		{"bob@test.com", "Bob", entity.RoleAdmin},
		{"charlie@test.com", "Charlie", entity.RoleUser},
		{"diana@test.com", "Diana", entity.RoleUser},
	}

	users := make([]*entity.User, 0, len(testUsers))
	for _, data := range testUsers {
		user, err := s.ensureUser(ctx, data.email, data.name, data.role)
		if err != nil {
			s.log.Error("Failed to create user %s: %v", data.email, err)
			continue
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return fmt.Errorf("no users available")
	}

	tags, err := s.ensureTags(ctx, map[string]string{"go": "Go", "graphql": "GraphQL", "databases": "Databases"})
	if err != nil {
		return err
	}
	categories, err := s.ensureCategories(ctx, map[string]string{"engineering": "Engineering", "news": "News"})
	if err != nil {
		return err
	}

	for i, author := range users {
		post := &entity.Post{
			Title:    fmt.Sprintf("Post #%d by %s", i+1, author.Email),
			Content:  "Seeded content for local development.",
			AuthorID: author.ID,
		}
		if s.s3Client != nil {
			imageURL, err := s.uploadCover(ctx, author.ID, i)
			if err != nil {
				s.log.Warn("Skipping cover image for post %d: %v", i+1, err)
			} else {
				post.ImageURL = &imageURL
			}
		}

		if err := s.repos.Posts.Create(ctx, post); err != nil {
			s.log.Error("Failed to create post for %s: %v", author.Email, err)
			continue
		}
		s.log.Info("Created post: %s", post.Title)

		tag := tags[i%len(tags)]
		if _, err := s.repos.PostTags.Create(ctx, post.ID, tag.ID); err != nil {
			s.log.Error("Failed to tag post %s: %v", post.ID, err)
		}
		category := categories[i%len(categories)]
		if _, err := s.repos.PostCategories.Create(ctx, post.ID, category.ID); err != nil {
			s.log.Error("Failed to categorize post %s: %v", post.ID, err)
		}

		for _, reader := range users {
			if reader.ID == author.ID {
				continue
			}
			comment := &entity.Comment{Content: "Nice post!", PostID: post.ID, UserID: reader.ID}
			if err := s.repos.Comments.Create(ctx, comment); err != nil {
				s.log.Error("Failed to create comment: %v", err)
			}
			if err := s.repos.Likes.Create(ctx, &entity.Like{PostID: post.ID, UserID: reader.ID}); err != nil {
				s.log.Error("Failed to create like: %v", err)
			}
		}
	}

	return nil
}

// ensureUser returns the existing user for email or creates one with local credentials.
func (s *seeder) ensureUser(ctx context.Context, email, name string, role entity.Role) (*entity.User, error) {
	existing, err := s.repos.Users.GetByEmail(ctx, email)
	if err == nil {
		s.log.Info("User %s already exists, skipping", email)
		return existing, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), auth.BcryptCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)

	user := &entity.User{Email: email, Name: &name, Role: role}
	account := &entity.Account{
		Type:              entity.AccountTypeCredentials,
		Provider:          entity.ProviderLocal,
		ProviderAccountID: email,
		AccessToken:       &hashed,
	}
	if err := s.repos.Users.CreateWithAccount(ctx, user, account); err != nil {
		return nil, err
	}

	s.log.Info("Created user: %s (%s)", email, role)
	return user, nil
}

func (s *seeder) ensureTags(ctx context.Context, names map[string]string) ([]*entity.Tag, error) {
	tags := make([]*entity.Tag, 0, len(names))
	for slug, name := range names {
		tag, err := s.repos.Tags.GetBySlug(ctx, slug)
		if apperror.IsNotFound(err) {
			tag = &entity.Tag{Name: name, Slug: slug}
			err = s.repos.Tags.Create(ctx, tag)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to ensure tag %s: %w", slug, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (s *seeder) ensureCategories(ctx context.Context, names map[string]string) ([]*entity.Category, error) {
	categories := make([]*entity.Category, 0, len(names))
	for slug, name := range names {
		category, err := s.repos.Categories.GetBySlug(ctx, slug)
		if apperror.IsNotFound(err) {
			category = &entity.Category{Name: name, Slug: slug}
			err = s.repos.Categories.Create(ctx, category)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to ensure category %s: %w", slug, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *seeder) uploadCover(ctx context.Context, userID string, index int) (string, error) {
	resp, err := s.httpClient.Get("https://cataas.com/cat")
	if err != nil {
		return "", fmt.Errorf("failed to fetch cover image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return "", fmt.Errorf("received empty image data")
	}

	key := fmt.Sprintf("posts/%s/seed_%d.jpg", userID, index)
	return s.s3Client.UploadFile(ctx, key, bytes.NewReader(imageData), "image/jpeg")
}

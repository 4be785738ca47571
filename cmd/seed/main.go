package main

import (
	"context"
	"strings"
	"time"

	"github.com/galeria-next/internal/config"
	"github.com/galeria-next/internal/gallery"
	"github.com/galeria-next/internal/logger"
)

// 向上游画廊后端写入演示用户与评价，供本地联调使用。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	client, err := gallery.NewClient(gallery.Config{
		BaseURL: cfg.Gallery.BaseURL,
		Timeout: time.Duration(cfg.Gallery.TimeoutMS) * time.Millisecond,
	})
	if err != nil {
		stdLog.Fatalf("Failed to init gallery client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	users := []gallery.CreateUserInput{
		{
			FullName: "Nguyễn Văn An",
			Email:    "an.nguyen@example.com",
			Password: "demo1234",
			Phone:    "0901234567",
			Address:  "12 Tràng Tiền, Hoàn Kiếm, Hà Nội",
		},
		{
			FullName: "Trần Thị Bích",
			Email:    "bich.tran@example.com",
			Password: "demo1234",
			Phone:    "0907654321",
			Address:  "45 Lê Lợi, Quận 1, TP.HCM",
		},
	}

	existing, err := client.ListUsers(ctx)
	if err != nil {
		stdLog.Fatalf("Failed to list users: %v", err)
	}
	existingEmails := make(map[string]uint, len(existing))
	for _, user := range existing {
		existingEmails[strings.ToLower(strings.TrimSpace(user.Email))] = user.ID
	}

	for _, user := range users {
		if _, ok := existingEmails[strings.ToLower(user.Email)]; ok {
			stdLog.Printf("User already exists: %s", user.Email)
			continue
		}
		if err := client.CreateUser(ctx, user); err != nil {
			stdLog.Printf("Failed to create user %s: %v", user.Email, err)
			continue
		}
		stdLog.Printf("Created user: %s", user.Email)
	}

	// 给前几幅画作写入演示评价
	paintings, err := client.ListPaintings(ctx)
	if err != nil {
		stdLog.Fatalf("Failed to list paintings: %v", err)
	}
	seeded, err := client.ListUsers(ctx)
	if err != nil || len(seeded) == 0 {
		stdLog.Fatalf("No users available for review seeding: %v", err)
	}
	reviewerID := seeded[0].ID

	comments := []string{
		"Màu sắc rất đẹp, đóng gói cẩn thận.",
		"Tranh giống hình, giao hàng nhanh.",
		"Chất lượng vải canvas tốt, rất hài lòng.",
	}
	for i, painting := range paintings {
		if i >= len(comments) {
			break
		}
		reviews, err := client.ListReviewsByPainting(ctx, painting.ID)
		if err == nil && len(reviews) > 0 {
			stdLog.Printf("Painting %d already has reviews", painting.ID)
			continue
		}
		if err := client.CreateReview(ctx, gallery.CreateReviewInput{
			PaintingID: painting.ID,
			UserID:     reviewerID,
			Rating:     5,
			Comment:    comments[i],
		}); err != nil {
			stdLog.Printf("Failed to create review for painting %d: %v", painting.ID, err)
			continue
		}
		stdLog.Printf("Created review for painting %d", painting.ID)
	}

	stdLog.Printf("Seed finished")
}

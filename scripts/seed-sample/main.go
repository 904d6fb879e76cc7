package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Configuration
	numUsers           = 12
	maxRequestsPerUser = 8
	samplePassword     = "tulisaja-demo"
)

var (
	db      *sql.DB
	userIDs []string
)

type product struct {
	Name     string
	Category string
	Price    string
	Features string
	Audience string
}

var products = []product{
	{"Kopi Robusta Lampung", "makanan-minuman", "Rp 45.000", "biji petik merah, sangrai medium, aroma cokelat", "pecinta kopi"},
	{"Keripik Singkong Balado", "makanan-minuman", "Rp 15.000", "pedas nampol, tanpa pengawet, renyah tahan lama", "anak muda"},
	{"Batik Tulis Pekalongan", "fashion", "Rp 350.000", "motif klasik, pewarna alami, kain katun primisima", "pegawai kantoran"},
	{"Tas Rajut Handmade", "kerajinan", "Rp 85.000", "benang poliester premium, muat laptop 13 inci", "mahasiswi"},
	{"Sabun Herbal Sereh", "kecantikan", "Rp 25.000", "bahan alami, melembapkan, wangi segar", "ibu rumah tangga"},
	{"Madu Hutan Asli", "pertanian", "Rp 120.000", "panen liar, tanpa campuran, khasiat terjaga", "keluarga sehat"},
	{"Jasa Desain Logo UMKM", "jasa", "Rp 200.000", "3 konsep awal, revisi 2 kali, file master lengkap", "pemilik usaha baru"},
	{"Casing HP Custom", "teknologi", "mulai Rp 35.000", "desain suka-suka, bahan soft case, cetak tajam", "remaja"},
}

var (
	contentTypeIDs = []string{"description", "caption", "headline"}
	tones          = []string{"casual", "professional", "friendly", "persuasive", "humorous", "luxury"}
	lengths        = []string{"short", "medium", "long"}
	platforms      = []string{"instagram", "facebook", "tiktok", "twitter"}
	modelIDs       = []string{"nova-lite-v1", "nova-lite-v1", "nova-pro-v1", "titan-text-express-v1"}
	shopPrefixes   = []string{"Warung", "Toko", "Dapur", "Galeri", "Studio", "Kedai"}
)

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/tulisaja.db"
	}

	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("🌱 Starting database seeding...")
	fmt.Println()

	clearSampleData()
	seedUsers()
	seedContents()

	fmt.Println()
	fmt.Println("✅ Database seeding completed!")
	fmt.Println()
	printSummary()
}

func clearSampleData() {
	fmt.Println("🧹 Clearing existing sample data...")

	// Clear in reverse dependency order
	tables := []string{
		"usage_stats",
		"generated_contents",
		"content_requests",
		"prompt_cache",
	}

	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			log.Printf("Warning: failed to clear %s: %v", table, err)
		}
	}

	// Delete sample users (preserve admins)
	_, err := db.Exec("DELETE FROM users WHERE is_admin = FALSE")
	if err != nil {
		log.Printf("Warning: failed to clear users: %v", err)
	}

	fmt.Println("✓ Cleared existing sample data")
	fmt.Println()
}

func seedUsers() {
	fmt.Println("👥 Creating users...")

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash sample password: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO users (id, email, username, password_hash, full_name, business_name, created_at, updated_at, last_login_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		log.Fatalf("Failed to prepare statement: %v", err)
	}
	defer stmt.Close()

	now := time.Now()

	for i := 0; i < numUsers; i++ {
		firstName := gofakeit.FirstName()
		lastName := gofakeit.LastName()
		username := gofakeit.Username()
		email := gofakeit.Email()
		businessName := fmt.Sprintf("%s %s", shopPrefixes[rand.Intn(len(shopPrefixes))], firstName)

		var createdAt, lastLoginAt time.Time
		switch {
		case i < 2:
			// Dormant users: registered long ago, no recent logins
			createdAt = now.AddDate(0, -6, -rand.Intn(60))
			lastLoginAt = now.AddDate(0, 0, -90-rand.Intn(30))
		case i < 6:
			// New users (registered within 30 days)
			createdAt = now.AddDate(0, 0, -rand.Intn(30))
			lastLoginAt = now.AddDate(0, 0, -rand.Intn(2))
		default:
			// Regular users
			createdAt = now.AddDate(0, -rand.Intn(5), -rand.Intn(30))
			lastLoginAt = now.AddDate(0, 0, -rand.Intn(7))
		}

		id := ulid.Make().String()
		userIDs = append(userIDs, id)

		_, err = stmt.Exec(
			id,
			email,
			username,
			string(passwordHash),
			fmt.Sprintf("%s %s", firstName, lastName),
			businessName,
			formatSQLiteTime(createdAt),
			formatSQLiteTime(createdAt),
			formatSQLiteTime(lastLoginAt),
		)
		if err != nil {
			log.Printf("Failed to insert user %s: %v", email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit users: %v", err)
	}

	fmt.Printf("✓ Created %d users\n", numUsers)
}

func seedContents() {
	fmt.Println("✍️ Creating content history...")

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	requestStmt, err := tx.Prepare(`
		INSERT INTO content_requests (id, user_id, product_name, category_id, price, features, target_audience, tone, content_type_id, platform, length, variations, status, model_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'completed', ?, ?)
	`)
	if err != nil {
		log.Fatalf("Failed to prepare request statement: %v", err)
	}
	defer requestStmt.Close()

	contentStmt, err := tx.Prepare(`
		INSERT INTO generated_contents (id, user_id, request_id, variation_index, prompt_text, raw_text, edited_text, is_favorite, quality_rating, copy_count, model_id, prompt_tokens, completion_tokens, estimated_cost_usd, response_time_ms, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		log.Fatalf("Failed to prepare content statement: %v", err)
	}
	defer contentStmt.Close()

	now := time.Now()
	totalRequests := 0
	totalContents := 0
	usage := make(map[string]map[string]int) // user -> day -> generations

	// Dormant users (the first two) keep an empty history
	for _, userID := range userIDs[2:] {
		numRequests := 1 + rand.Intn(maxRequestsPerUser)

		for r := 0; r < numRequests; r++ {
			p := products[rand.Intn(len(products))]
			contentType := contentTypeIDs[rand.Intn(len(contentTypeIDs))]
			tone := tones[rand.Intn(len(tones))]
			length := lengths[rand.Intn(len(lengths))]
			modelID := modelIDs[rand.Intn(len(modelIDs))]
			createdAt := now.AddDate(0, 0, -rand.Intn(30)).Add(-time.Duration(rand.Intn(600)) * time.Minute)

			var platform interface{}
			if contentType == "caption" {
				platform = platforms[rand.Intn(len(platforms))]
			}

			variations := 1
			if contentType == "headline" {
				variations = 3
			}

			requestID := ulid.Make().String()
			_, err = requestStmt.Exec(
				requestID,
				userID,
				p.Name,
				p.Category,
				p.Price,
				p.Features,
				p.Audience,
				tone,
				contentType,
				platform,
				length,
				variations,
				modelID,
				formatSQLiteTime(createdAt),
			)
			if err != nil {
				log.Printf("Failed to insert request for %s: %v", p.Name, err)
				continue
			}
			totalRequests++

			promptText := fmt.Sprintf("Buatlah %s dalam bahasa Indonesia untuk produk %q dengan gaya %s.", contentType, p.Name, tone)
			promptTokens := 80 + rand.Intn(120)
			completionTokens := 40 + rand.Intn(200)

			for v := 0; v < variations; v++ {
				var editedText interface{}
				if rand.Float32() < 0.15 {
					editedText = sampleText(contentType, p, v) + " (sudah kuedit sedikit)"
				}

				var qualityRating interface{}
				if rand.Float32() < 0.25 {
					qualityRating = 3 + rand.Intn(3)
				}

				// Tokens and cost are recorded on the first variation only
				tokensIn, tokensOut := 0, 0
				cost := 0.0
				if v == 0 {
					tokensIn, tokensOut = promptTokens, completionTokens
					cost = float64(completionTokens) * 0.00000125
				}

				_, err = contentStmt.Exec(
					uuid.New().String(),
					userID,
					requestID,
					v,
					promptText,
					sampleText(contentType, p, v),
					editedText,
					rand.Float32() < 0.3,
					qualityRating,
					rand.Intn(4),
					modelID,
					tokensIn,
					tokensOut,
					cost,
					300+rand.Intn(2500),
					formatSQLiteTime(createdAt),
					formatSQLiteTime(createdAt),
				)
				if err != nil {
					log.Printf("Failed to insert content for %s: %v", p.Name, err)
					continue
				}
				totalContents++
			}

			day := createdAt.UTC().Format("2006-01-02")
			if usage[userID] == nil {
				usage[userID] = make(map[string]int)
			}
			usage[userID][day]++
		}
	}

	usageStmt, err := tx.Prepare(`
		INSERT INTO usage_stats (id, user_id, day, generation_count, tokens_used, estimated_cost_usd)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		log.Fatalf("Failed to prepare usage statement: %v", err)
	}
	defer usageStmt.Close()

	totalUsageRows := 0
	for userID, days := range usage {
		for day, count := range days {
			_, err = usageStmt.Exec(
				ulid.Make().String(),
				userID,
				day,
				count,
				count*(150+rand.Intn(150)),
				float64(count)*0.0002,
			)
			if err != nil {
				log.Printf("Failed to insert usage stat: %v", err)
				continue
			}
			totalUsageRows++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit contents: %v", err)
	}

	fmt.Printf("✓ Created %d requests with %d contents (%d usage rows)\n", totalRequests, totalContents, totalUsageRows)
}

func sampleText(contentType string, p product, variation int) string {
	switch contentType {
	case "caption":
		return fmt.Sprintf("%s emang juara! Cocok banget buat %s. Harga cuma %s, yuk diorder sebelum kehabisan! #umkm #produklokal", p.Name, p.Audience, p.Price)
	case "headline":
		headlines := []string{
			fmt.Sprintf("%s: Pilihan Terbaik untuk %s", p.Name, p.Audience),
			fmt.Sprintf("Sudah Coba %s? %s Wajib Punya!", p.Name, p.Audience),
			fmt.Sprintf("Promo %s, Kualitas Nomor Satu", p.Name),
		}
		return headlines[variation%len(headlines)]
	default:
		return fmt.Sprintf("%s hadir khusus untuk %s. Keunggulannya: %s. Dengan harga %s, kualitas tidak pernah bohong. Pesan sekarang juga!", p.Name, p.Audience, p.Features, p.Price)
	}
}

func printSummary() {
	fmt.Println("📊 Summary:")
	fmt.Println()

	counts := make(map[string]int)
	tables := []string{
		"users",
		"content_requests",
		"generated_contents",
		"usage_stats",
	}

	for _, table := range tables {
		var count int
		if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
			log.Printf("Failed to count %s: %v", table, err)
			continue
		}
		counts[table] = count
	}

	var favorites int
	db.QueryRow("SELECT COUNT(*) FROM generated_contents WHERE is_favorite = TRUE").Scan(&favorites)

	fmt.Printf("  Users:      %d\n", counts["users"])
	fmt.Printf("  Requests:   %d\n", counts["content_requests"])
	fmt.Printf("  Contents:   %d (%d favorites)\n", counts["generated_contents"], favorites)
	fmt.Printf("  Usage rows: %d\n", counts["usage_stats"])
	fmt.Println()
	fmt.Printf("🔐 Every sample user logs in with password: %s\n", samplePassword)
	fmt.Println("🎉 Start the server and browse the content history with realistic data!")
}

// formatSQLiteTime formats a time.Time as SQLite-compatible datetime string without timezone
func formatSQLiteTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

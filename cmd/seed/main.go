package main

import (
	"bytes"
	"context"
	"log"
	"time"

	"enso/internal/config"
	"enso/internal/database"
	"enso/internal/models"
	"enso/internal/storage"
	"enso/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedUser represents a user document for seeding.
type SeedUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	// Seed users
	userIDs := seedUsers(ctx, mongoDB.Database)

	// Seed a team with both users as members
	teamID := seedTeam(ctx, mongoDB.Database, userIDs)

	// Seed projects with tasks and mood boards
	seedProjects(ctx, mongoDB.Database, s3Client, teamID, userIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	// Clear existing users
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	// Hash passwords
	password1, _ := auth.HashPassword("password123")
	password2, _ := auth.HashPassword("password456")

	now := time.Now()

	users := []interface{}{
		SeedUser{
			Email:     "alice@example.com",
			Password:  password1,
			Name:      "Alice Johnson",
			CreatedAt: now,
			UpdatedAt: now,
		},
		SeedUser{
			Email:     "bob@example.com",
			Password:  password2,
			Name:      "Bob Smith",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	// Convert to ObjectIDs
	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedTeam(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) primitive.ObjectID {
	teams := db.Collection("teams")
	members := db.Collection("team_members")

	if _, err := teams.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear teams: %v", err)
	}
	if _, err := members.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear team members: %v", err)
	}
	if _, err := db.Collection("team_invitations").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear team invitations: %v", err)
	}

	now := time.Now()

	team := models.Team{
		Name:        "Kyoto Press Studio",
		Slug:        "kyoto-press-studio",
		Description: "Editorial design studio",
		OwnerID:     userIDs[0],
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := teams.InsertOne(ctx, team)
	if err != nil {
		log.Fatalf("Failed to seed team: %v", err)
	}
	teamID := result.InsertedID.(primitive.ObjectID)

	memberDocs := []interface{}{
		models.TeamMember{
			TeamID:   teamID,
			UserID:   userIDs[0],
			Role:     models.RoleOwner,
			JoinedAt: now,
		},
		models.TeamMember{
			TeamID:   teamID,
			UserID:   userIDs[1],
			Role:     models.RoleMember,
			JoinedAt: now,
		},
	}

	if _, err := members.InsertMany(ctx, memberDocs); err != nil {
		log.Fatalf("Failed to seed team members: %v", err)
	}

	log.Printf("Seeded team %s with %d members", teamID.Hex(), len(memberDocs))
	return teamID
}

func seedProjects(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client, teamID primitive.ObjectID, userIDs []primitive.ObjectID) {
	collection := db.Collection("projects")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear projects: %v", err)
	}

	now := time.Now()

	// Catalogue project for Alice: tasks with a dependency chain and a small
	// mood board including one image backed by object storage.
	paletteTaskID := primitive.NewObjectID()
	coverTaskID := primitive.NewObjectID()
	printTaskID := primitive.NewObjectID()
	imageKey := "board-media/autumn-catalogue/palette-reference.png"

	catalogue := models.Project{
		TeamID:        teamID,
		OwnerID:       userIDs[0],
		Collaborators: []primitive.ObjectID{userIDs[0], userIDs[1]},
		Title:         "Autumn catalogue",
		Client:        "Kyoto Press",
		Essence:       "Quiet, seasonal, unhurried.",
		Status:        models.ProjectInProgress,
		Visibility:    models.VisibilityTeam,
		Layout:        models.LayoutManuscript,
		Tasks: []models.Task{
			{
				ID:        paletteTaskID,
				Text:      "Choose palette",
				Status:    models.TaskDone,
				Images:    []string{},
				CreatedAt: now.Add(-72 * time.Hour),
			},
			{
				ID:           coverTaskID,
				Text:         "Sketch cover concepts",
				Status:       models.TaskInProgress,
				Images:       []string{},
				Dependencies: []primitive.ObjectID{paletteTaskID},
				CreatedAt:    now.Add(-48 * time.Hour),
			},
			{
				ID:           printTaskID,
				Text:         "Send to print",
				Status:       models.TaskTodo,
				Images:       []string{},
				Dependencies: []primitive.ObjectID{coverTaskID},
				CreatedAt:    now.Add(-24 * time.Hour),
			},
		},
		BoardItems: []models.BoardItem{
			{
				ID:         primitive.NewObjectID(),
				Type:       models.BoardItemText,
				Content:    "A circle, drawn in one breath.",
				Marginalia: "opening spread?",
				CreatedAt:  now.Add(-70 * time.Hour),
			},
			{
				ID:        primitive.NewObjectID(),
				Type:      models.BoardItemImage,
				Content:   imageKey,
				Meta:      "Reference palette",
				CreatedAt: now.Add(-68 * time.Hour),
			},
			{
				ID:        primitive.NewObjectID(),
				Type:      models.BoardItemLink,
				Content:   "https://example.com/seasonal-typography",
				CreatedAt: now.Add(-12 * time.Hour),
			},
		},
		CreatedAt: now.Add(-96 * time.Hour),
		UpdatedAt: now,
	}

	// Private project for Bob: only he can see it.
	sketchbook := models.Project{
		TeamID:        teamID,
		OwnerID:       userIDs[1],
		Collaborators: []primitive.ObjectID{userIDs[1]},
		Title:         "Personal sketchbook",
		Essence:       "Loose studies, no deadlines.",
		Status:        models.ProjectIdea,
		Visibility:    models.VisibilityPrivate,
		Layout:        models.LayoutKanban,
		Tasks: []models.Task{
			{
				ID:        primitive.NewObjectID(),
				Text:      "Ink wash exercises",
				Status:    models.TaskTodo,
				Images:    []string{},
				CreatedAt: now.Add(-6 * time.Hour),
			},
		},
		BoardItems: []models.BoardItem{},
		CreatedAt:  now.Add(-8 * time.Hour),
		UpdatedAt:  now.Add(-6 * time.Hour),
	}

	uploadPlaceholderImage(ctx, s3Client, imageKey)

	result, err := collection.InsertMany(ctx, []interface{}{catalogue, sketchbook})
	if err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}

	log.Printf("Seeded %d projects", len(result.InsertedIDs))
}

// uploadPlaceholderImage uploads a tiny placeholder PNG to S3.
func uploadPlaceholderImage(ctx context.Context, s3Client *storage.S3Client, key string) {
	// Minimal PNG header followed by padding; enough for presigned URL demos.
	placeholder := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x00}, 120)...)

	err := s3Client.PutObject(ctx, key, bytes.NewReader(placeholder), "image/png")
	if err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return
	}

	log.Printf("Uploaded placeholder image: %s", key)
}

package repository

import (
	"path/filepath"
	"testing"
	"time"

	"kidsguard/internal/database"
	"kidsguard/internal/models"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping sqlite integration test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "repo.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestChildRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChildRepository(db)

	layla, err := repo.Create("Layla", "happy-panda")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if layla.ID == 0 || !layla.IsActive {
		t.Errorf("Create() = %+v, want an active child with an id", layla)
	}
	if _, err := repo.Create("Omar", "brave-lion"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := db.Exec("UPDATE children SET is_active = ? WHERE username = ?", false, "brave-lion"); err != nil {
		t.Fatal(err)
	}

	active, err := repo.ListActive()
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(active) != 1 || active[0].Username != "happy-panda" {
		t.Errorf("ListActive() = %+v, want only happy-panda", active)
	}

	exists, err := repo.UsernameExists("brave-lion")
	if err != nil || !exists {
		t.Errorf("UsernameExists(brave-lion) = %v, %v; want true", exists, err)
	}

	if _, err := repo.Create("Other", "happy-panda"); err == nil {
		t.Error("Create() with a duplicate username should fail")
	}

	count, err := repo.Count()
	if err != nil || count != 2 {
		t.Errorf("Count() = %d, %v; want 2", count, err)
	}
}

func TestCatalogRepositoryReplace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)

	games := []models.Game{
		{Title: "Math Adventure", Category: "math", GameType: "serious", Difficulty: "beginner",
			AgeGroups: models.StringList{"6-8"}, NumberOfLevels: 5, HasLevels: true, IsActive: true, IsPublished: true},
		{Title: "Draft Game", Category: "science", GameType: "serious", Difficulty: "beginner",
			IsActive: true, IsPublished: false},
	}
	if err := repo.ReplaceGames(games); err != nil {
		t.Fatalf("ReplaceGames() error = %v", err)
	}
	if games[0].ID == 0 || games[1].ID == 0 {
		t.Errorf("ReplaceGames() did not assign ids: %+v", games)
	}

	published, err := repo.ListPublishedGames()
	if err != nil {
		t.Fatalf("ListPublishedGames() error = %v", err)
	}
	if len(published) != 1 || published[0].Title != "Math Adventure" {
		t.Fatalf("ListPublishedGames() = %+v", published)
	}
	if len(published[0].AgeGroups) != 1 || published[0].AgeGroups[0] != "6-8" {
		t.Errorf("AgeGroups = %v, want [6-8]", published[0].AgeGroups)
	}

	// Replacing again must not accumulate rows
	if err := repo.ReplaceGames(games[:1]); err != nil {
		t.Fatalf("ReplaceGames() second call error = %v", err)
	}
	var total int
	if err := db.Get(&total, "SELECT COUNT(*) FROM games"); err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Errorf("games after replace = %d, want 1", total)
	}

	modules := []models.LearningModule{{
		Title: "Coding Basics", Subject: "coding", Difficulty: "beginner", IsActive: true, IsPublished: true,
		Lessons: models.Lessons{{LessonNumber: 1, Title: "What is Programming?", ContentType: "video", DurationMinutes: 20, Order: 1}},
	}}
	if err := repo.ReplaceModules(modules); err != nil {
		t.Fatalf("ReplaceModules() error = %v", err)
	}
	listed, err := repo.ListPublishedModules()
	if err != nil {
		t.Fatalf("ListPublishedModules() error = %v", err)
	}
	if len(listed) != 1 || len(listed[0].Lessons) != 1 || listed[0].Lessons[0].Title != "What is Programming?" {
		t.Errorf("ListPublishedModules() = %+v", listed)
	}
}

func TestSessionAndProgressRepositories(t *testing.T) {
	db := setupTestDB(t)
	child, err := NewChildRepository(db).Create("Sara", "clever-owl")
	if err != nil {
		t.Fatal(err)
	}

	start := time.Date(2026, 4, 2, 10, 15, 0, 0, time.UTC)
	session := &models.Session{
		ChildID:          child.ID,
		StartTime:        start,
		EndTime:          start.Add(20 * time.Minute),
		DurationSeconds:  1200,
		DeviceType:       models.DeviceTablet,
		TotalGamesPlayed: 1,
		Activities: models.Activities{
			{Content: models.GameContent(3), StartTime: start, EndTime: start.Add(10 * time.Minute), DurationSeconds: 600, Score: 90, Completed: true, Level: 2},
			{Content: models.CreativeContent(), StartTime: start.Add(10 * time.Minute), EndTime: start.Add(15 * time.Minute), DurationSeconds: 300, Score: 70, Level: 1},
		},
	}

	sessions := NewSessionRepository(db)
	if err := sessions.Create(session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if session.ID == 0 {
		t.Fatal("Create() did not set the session id")
	}

	completedAt := start.Add(10 * time.Minute)
	level := 2
	progress := &models.Progress{
		ChildID:              child.ID,
		SessionID:            session.ID,
		Content:              models.GameContent(3),
		Status:               models.StatusCompleted,
		StartedAt:            start,
		CompletedAt:          &completedAt,
		LastAccessedAt:       completedAt,
		Score:                90,
		Attempts:             2,
		BestScore:            90,
		TimeSpentSeconds:     600,
		PointsEarned:         120,
		CompletionPercentage: 100,
		CurrentLevel:         &level,
		LevelsCompleted:      models.LevelCompletions{{LevelNumber: 2, CompletedAt: completedAt, Score: 90, Stars: 3}},
		LessonsCompleted:     models.LessonCompletions{},
	}
	progressRepo := NewProgressRepository(db)
	if err := progressRepo.Create(progress); err != nil {
		t.Fatalf("progress Create() error = %v", err)
	}
	if err := progressRepo.Create(&models.Progress{ChildID: child.ID, SessionID: session.ID, Content: models.CreativeContent()}); err == nil {
		t.Error("progress Create() should reject creative content")
	}

	if err := sessions.UpdatePoints(session.ID, 120); err != nil {
		t.Fatalf("UpdatePoints() error = %v", err)
	}
	if err := sessions.UpdatePoints(session.ID+100, 5); err == nil {
		t.Error("UpdatePoints() on a missing session should fail")
	}

	stored, err := sessions.ListByChild(child.ID)
	if err != nil {
		t.Fatalf("ListByChild() error = %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("ListByChild() returned %d sessions", len(stored))
	}
	if stored[0].PointsEarned != 120 || stored[0].DeviceType != models.DeviceTablet {
		t.Errorf("stored session = %+v", stored[0])
	}
	if len(stored[0].Activities) != 2 || stored[0].Activities[0].Content != models.GameContent(3) {
		t.Errorf("stored activities = %+v", stored[0].Activities)
	}
	if !stored[0].StartTime.Equal(start) {
		t.Errorf("StartTime = %v, want %v", stored[0].StartTime, start)
	}

	records, err := progressRepo.ListBySession(session.ID)
	if err != nil {
		t.Fatalf("ListBySession() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("ListBySession() returned %d records", len(records))
	}
	got := records[0]
	if got.Content != models.GameContent(3) || got.CompletedAt == nil || got.CurrentLevel == nil || *got.CurrentLevel != 2 {
		t.Errorf("stored progress = %+v", got)
	}
	if got.CurrentLesson != nil {
		t.Errorf("CurrentLesson = %v, want nil", *got.CurrentLesson)
	}
	if len(got.LevelsCompleted) != 1 || got.LevelsCompleted[0].Stars != 3 {
		t.Errorf("LevelsCompleted = %+v", got.LevelsCompleted)
	}
}

func TestAlertRepositoryOmitsUnresolvedResponse(t *testing.T) {
	db := setupTestDB(t)
	child, err := NewChildRepository(db).Create("Yusuf", "swift-fox")
	if err != nil {
		t.Fatal(err)
	}
	alerts := NewAlertRepository(db)

	created := time.Date(2026, 4, 3, 18, 5, 0, 0, time.UTC)
	open := &models.Alert{
		ChildID: child.ID, Type: models.AlertScreenTimeWarning, Severity: models.SeverityLow,
		Title: "Screen Time Warning", Message: "Approaching daily screen time limit",
		TriggeredBy: "system", Context: models.AlertContext{}, ShownToParent: true, CreatedAt: created,
	}
	if err := alerts.Create(open); err != nil {
		t.Fatalf("Create(open) error = %v", err)
	}

	resolvedAt := created.Add(3 * time.Hour)
	response := models.ResponseAcknowledged
	closed := &models.Alert{
		ChildID: child.ID, Type: models.AlertEducational, Severity: models.SeverityLow,
		Title: "Learning Tip", Message: "Great progress! Keep up the good work!",
		TriggeredBy: "system", ShownToParent: true, Resolved: true,
		ResolvedAt: &resolvedAt, ParentResponse: &response, CreatedAt: created.Add(time.Minute),
	}
	if err := alerts.Create(closed); err != nil {
		t.Fatalf("Create(closed) error = %v", err)
	}

	var nullResponses int
	if err := db.Get(&nullResponses, "SELECT COUNT(*) FROM alerts WHERE parent_response IS NULL"); err != nil {
		t.Fatal(err)
	}
	if nullResponses != 1 {
		t.Errorf("alerts without a response = %d, want 1", nullResponses)
	}

	listed, err := alerts.ListByChild(child.ID)
	if err != nil {
		t.Fatalf("ListByChild() error = %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("ListByChild() returned %d alerts", len(listed))
	}
	if listed[0].Resolved || listed[0].ParentResponse != nil || listed[0].ResolvedAt != nil {
		t.Errorf("open alert = %+v", listed[0])
	}
	if !listed[1].Resolved || listed[1].ParentResponse == nil || *listed[1].ParentResponse != models.ResponseAcknowledged {
		t.Errorf("resolved alert = %+v", listed[1])
	}
}

func TestMonitoringStoreClear(t *testing.T) {
	db := setupTestDB(t)
	child, err := NewChildRepository(db).Create("Mariam", "gentle-deer")
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now().UTC().Truncate(time.Second)
	session := &models.Session{ChildID: child.ID, StartTime: start, EndTime: start.Add(10 * time.Minute), DurationSeconds: 600, DeviceType: models.DeviceMobile}
	if err := NewSessionRepository(db).Create(session); err != nil {
		t.Fatal(err)
	}
	if err := NewProgressRepository(db).Create(&models.Progress{
		ChildID: child.ID, SessionID: session.ID, Content: models.ModuleContent(1),
		Status: models.StatusInProgress, StartedAt: start, LastAccessedAt: start, Attempts: 1, CompletionPercentage: 40,
	}); err != nil {
		t.Fatal(err)
	}
	if err := NewAlertRepository(db).Create(&models.Alert{
		ChildID: child.ID, Type: models.AlertExcessiveGaming, Severity: models.SeverityMedium,
		Title: "Excessive Gaming Detected", Message: "Long gaming session detected", TriggeredBy: "system", CreatedAt: start,
	}); err != nil {
		t.Fatal(err)
	}

	if err := NewMonitoringStore(db).Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	for _, counter := range []func() (int, error){
		NewSessionRepository(db).Count,
		NewProgressRepository(db).Count,
		NewAlertRepository(db).Count,
	} {
		n, err := counter()
		if err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Errorf("rows left after Clear() = %d", n)
		}
	}

	children, err := NewChildRepository(db).Count()
	if err != nil || children != 1 {
		t.Errorf("children after Clear() = %d, %v; want 1", children, err)
	}
}

package system

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/liftlog/internal/backup"
	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/keyring"
	"github.com/julianstephens/liftlog/internal/migration"
	"github.com/julianstephens/liftlog/internal/storage/postgres"
	"github.com/julianstephens/liftlog/internal/validation"
	"github.com/julianstephens/liftlog/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid (only if DB is reachable)
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: Orphaned logs (only if DB is reachable)
	if dbReachable {
		if err := checkOrphanedLogs(ctx); err != nil {
			fmt.Printf("❌ Log integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Log integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Log integrity: SKIPPED (database not reachable)\n")
	}

	// Check 5: One draft per date (only if DB is reachable)
	if dbReachable {
		if err := checkDraftUniqueness(ctx); err != nil {
			fmt.Printf("❌ Draft uniqueness: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Draft uniqueness: OK\n")
		}
	} else {
		fmt.Printf("⊘ Draft uniqueness: SKIPPED (database not reachable)\n")
	}

	// Check 6: Date formats (only if DB is reachable)
	if dbReachable {
		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
	}

	// Check 7: No other liftlog process writing the same database
	if err := checkSingleWriter(); err != nil {
		fmt.Printf("⚠ Single writer: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single writer: OK\n")
	}

	// Check 8: Keyring availability (info only)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: available\n")
	} else {
		fmt.Printf("⚠ OS keyring: not available on this system\n")
	}

	// Check 9: Clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if provider, ok := ctx.Store.(dbProvider); ok {
		db := provider.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	provider, ok := ctx.Store.(dbProvider)
	if !ok {
		return nil
	}
	db := provider.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	dir := "sqlite"
	if _, ok := ctx.Store.(*postgres.Store); ok {
		dir = "postgres"
	}
	sub, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return err
	}
	runner := migration.NewRunner(db, sub)

	current, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'liftlog migrate')", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store, ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'liftlog backup create'")
	}
	return nil
}

func checkOrphanedLogs(ctx *cli.Context) error {
	workouts, err := ctx.Store.GetAllWorkouts()
	if err != nil {
		return fmt.Errorf("failed to get workouts: %w", err)
	}
	known := make(map[int64]bool, len(workouts))
	for _, w := range workouts {
		known[w.ID] = true
	}

	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return fmt.Errorf("failed to get logs: %w", err)
	}
	orphaned := 0
	for _, l := range logs {
		if !known[l.WorkoutID] {
			orphaned++
		}
	}
	if orphaned > 0 {
		return fmt.Errorf("found %d logs referencing non-existent workouts", orphaned)
	}
	return nil
}

func checkDraftUniqueness(ctx *cli.Context) error {
	workouts, err := ctx.Store.GetAllWorkouts()
	if err != nil {
		return fmt.Errorf("failed to get workouts: %w", err)
	}
	drafts := make(map[string]int)
	for _, w := range workouts {
		if w.Active() {
			drafts[w.Date]++
		}
	}
	var violations []string
	for date, n := range drafts {
		if n > 1 {
			violations = append(violations, fmt.Sprintf("%s (%d drafts)", date, n))
		}
	}
	if len(violations) > 0 {
		return fmt.Errorf("dates with multiple draft workouts: %s", strings.Join(violations, ", "))
	}
	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	workouts, err := ctx.Store.GetAllWorkouts()
	if err != nil {
		return fmt.Errorf("failed to get workouts: %w", err)
	}
	invalid := 0
	for _, w := range workouts {
		if validation.ValidateDate(w.Date) != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d workouts with invalid date format", invalid)
	}

	entries, err := ctx.Store.GetAllBodyweight()
	if err != nil {
		return fmt.Errorf("failed to get bodyweight entries: %w", err)
	}
	invalid = 0
	for _, e := range entries {
		if validation.ValidateDate(e.Date) != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d bodyweight entries with invalid date format", invalid)
	}
	return nil
}

// checkSingleWriter scans the process table for another running liftlog
// binary. SQLite tolerates this poorly across machines, so it warns rather
// than fails.
func checkSingleWriter() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			return fmt.Errorf("another %s process is running (pid %d)", constants.AppName, p.Pid())
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

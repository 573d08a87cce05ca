package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dummyforge/dummyforge/template"
)

var (
	sqliteFlag     bool
	postgresqlFlag bool
	mysqlFlag      bool
	dbFlag         string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new DummyForge project",
	Long:  `Initialize a new DummyForge project with a starter generation config and tool configuration.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbType := template.PostgreSQL
		flagCount := 0

		if sqliteFlag {
			dbType = template.SQLite
			flagCount++
		}
		if postgresqlFlag {
			dbType = template.PostgreSQL
			flagCount++
		}
		if mysqlFlag {
			dbType = template.MySQL
			flagCount++
		}

		if flagCount > 1 {
			return fmt.Errorf("please specify only one database type (--sqlite, --postgresql, or --mysql)")
		}

		if dbFlag != "" {
			if flagCount > 0 {
				return fmt.Errorf("--db cannot be combined with --sqlite, --postgresql or --mysql")
			}
			dbType = template.ValidateDatabaseType(dbFlag)
		}

		return initializeProject(dbType)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&sqliteFlag, "sqlite", false, "Initialize project for SQLite database")
	initCmd.Flags().BoolVar(&postgresqlFlag, "postgresql", false, "Initialize project for PostgreSQL database")
	initCmd.Flags().BoolVar(&mysqlFlag, "mysql", false, "Initialize project for MySQL database")
	initCmd.Flags().StringVar(&dbFlag, "db", "", "Database type by name: sqlite, mysql, postgresql (unknown names default to postgresql)")
}

func initializeProject(dbType template.DatabaseType) error {
	tmpl := template.NewProjectTemplate(dbType)

	directories := tmpl.GetDirectoryStructure()
	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := map[string]string{
		"dummyforge.config.json": tmpl.GetAppConfig(),
	}

	starterExists := false
	if _, err := os.Stat("configs/people.yaml"); err == nil {
		starterExists = true
	}
	if !starterExists {
		files["configs/people.yaml"] = tmpl.GetStarterConfig()
	}

	for filePath, content := range files {
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to create file %s: %w", filePath, err)
		}
	}

	if err := handleEnvFile(tmpl.GetEnvTemplate()); err != nil {
		return fmt.Errorf("failed to handle .env file: %w", err)
	}

	fmt.Printf("✅ Successfully initialized DummyForge project with %s database support\n", dbType)
	fmt.Println()
	fmt.Println("📁 Project structure created:")
	for _, dir := range directories {
		fmt.Printf("   %s/\n", dir)
	}
	fmt.Println()
	fmt.Println("📝 Configuration files created:")
	fmt.Println("   dummyforge.config.json")
	if starterExists {
		fmt.Println("ℹ️  Skipped configs/people.yaml (already exists)")
	} else {
		fmt.Println("   configs/people.yaml")
	}

	if os.Getenv("DATABASE_URL") != "" {
		fmt.Println()
		fmt.Println("ℹ️  Using existing DATABASE_URL from environment")
	}

	fmt.Println()
	fmt.Printf("🚀 Next steps:\n")
	fmt.Printf("   dummyforge generate --file configs/people.yaml   # Generate a CSV export\n")
	fmt.Printf("   dummyforge seed --file configs/people.yaml       # Seed the database\n")
	fmt.Printf("   dummyforge serve                                 # Start the HTTP API\n")

	return nil
}

func handleEnvFile(defaultEnvContent string) error {
	envPath := ".env"

	existingContent, err := os.ReadFile(envPath)
	if err != nil {
		if os.IsNotExist(err) {
			return os.WriteFile(envPath, []byte(defaultEnvContent), 0644)
		}
		return err
	}

	existingStr := string(existingContent)
	if strings.Contains(existingStr, "DATABASE_URL") {
		return nil
	}

	if len(existingStr) > 0 && !strings.HasSuffix(existingStr, "\n") {
		existingStr += "\n"
	}

	existingStr += "\n# Added by DummyForge\n" + defaultEnvContent

	return os.WriteFile(envPath, []byte(existingStr), 0644)
}

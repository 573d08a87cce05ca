package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.0"
)

func showBanner() {
	cyan := color.New(color.FgCyan, color.Bold)

	banner := []string{
		`    ____                                  ______                    `,
		`   / __ \__  ______ ___  ____ ___  __  __/ ____/___  _________ ____ `,
		`  / / / / / / / __ '__ \/ __ '__ \/ / / / /_  / __ \/ ___/ __ '/ _ \`,
		` / /_/ / /_/ / / / / / / / / / / / /_/ / __/ / /_/ / /  / /_/ /  __/`,
		`/_____/\__,_/_/ /_/ /_/_/ /_/ /_/\__, /_/    \____/_/   \__, /\___/ `,
		`                                /____/                 /____/       `,
	}

	for _, line := range banner {
		cyan.Println(line)
	}

	fmt.Print("            ")
	color.New(color.FgWhite, color.Bold).Print("Synthetic tabular data generator  ")
	color.New(color.FgYellow, color.Bold).Printf("v%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "dummyforge",
	Short: "Generate realistic synthetic tabular data",
	Long: `
DummyForge generates synthetic tabular records (names, contact info, IDs,
custom patterned fields) from a declarative field configuration and writes
the result as SQL, CSV, TXT, JSON, XLSX or PDF — or seeds it straight into
a database.

Output targets:
- Files (csv, sql, txt, json, xlsx, pdf)
- Databases (PostgreSQL, MySQL, SQLite)
- HTTP API (dummyforge serve)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("DummyForge CLI version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./dummyforge.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("dummyforge.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}

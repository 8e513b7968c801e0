package cmd

import (
	"fmt"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/service"
	"learnpath_backend/pkg/database"
	"learnpath_backend/pkg/logger"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load ';' separated dataset files into the database",
	Long: "Each --dataset flag names a table and a file in the configured storage, " +
		"for example --dataset courses=courses.csv. Known datasets: " + strings.Join(service.Datasets(), ", ") + ".",
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringArray("dataset", nil, "name=file pair, repeatable")
	importCmd.Flags().Int("batch-size", service.DefaultImportBatchSize, "Rows per insert statement")
}

type datasetArg struct {
	name string
	file string
}

func parseDatasetArgs(values []string) ([]datasetArg, error) {
	args := make([]datasetArg, 0, len(values))
	for _, v := range values {
		name, file, ok := strings.Cut(v, "=")
		if !ok || name == "" || file == "" {
			return nil, fmt.Errorf("invalid --dataset %q, want name=file", v)
		}
		args = append(args, datasetArg{name: strings.TrimSpace(name), file: strings.TrimSpace(file)})
	}
	return args, nil
}

func runImport(cmd *cobra.Command, _ []string) error {
	values, _ := cmd.Flags().GetStringArray("dataset")
	datasets, err := parseDatasetArgs(values)
	if err != nil {
		return err
	}
	if len(datasets) == 0 {
		return fmt.Errorf("at least one --dataset is required")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Log.Sync()

	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return err
	}
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	svc := service.NewImportService(repository.NewImportRepository(db), storage)
	if n, _ := cmd.Flags().GetInt("batch-size"); n > 0 {
		svc.BatchSize = n
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Dataset", "Source", "Imported", "Skipped"})

	var failed int
	for _, d := range datasets {
		res, err := svc.Import(cmd.Context(), d.name, d.file)
		if err != nil {
			failed++
			color.Red("%s: %v", d.name, err)
			continue
		}
		table.Append([]string{res.Dataset, res.Source, strconv.Itoa(res.Imported), strconv.Itoa(res.Skipped)})
	}

	color.Cyan("\nImport summary")
	table.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d datasets failed", failed, len(datasets))
	}
	return nil
}

package cmd

import (
	"fmt"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/service"
	"learnpath_backend/pkg/database"
	"learnpath_backend/pkg/logger"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print job recommendations for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetUint("user")
		if userID == 0 {
			return fmt.Errorf("--user is required")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer logger.Log.Sync()

		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)

		svc := service.NewRecommendationService(repository.NewRatingRepository(db), repository.NewJobRepository(db))
		recs, err := svc.Recommend(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			color.Yellow("No recommendations for user %d", userID)
			return nil
		}

		color.Cyan("\nTop jobs for user %d", userID)
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Rank", "Job ID", "Position", "Similarity"})
		for i, r := range recs {
			table.Append([]string{
				strconv.Itoa(i + 1),
				strconv.FormatUint(uint64(r.JobID), 10),
				r.Position,
				strconv.FormatFloat(r.Similarity, 'f', 4, 64),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	recommendCmd.Flags().Uint("user", 0, "User id")
}

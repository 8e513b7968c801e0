// @title Learning Path API
// @version 1.0
// @description Ratings, saved answers, assessment review and job recommendations.

// @host localhost:8080
// @BasePath /api

package main

import (
	"learnpath_backend/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

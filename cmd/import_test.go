package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatasetArgs(t *testing.T) {
	args, err := parseDatasetArgs([]string{"courses=courses.csv", " jobs = data/jobs.csv "})
	require.NoError(t, err)
	assert.Equal(t, []datasetArg{
		{name: "courses", file: "courses.csv"},
		{name: "jobs", file: "data/jobs.csv"},
	}, args)

	for _, bad := range []string{"courses", "=x.csv", "courses="} {
		_, err := parseDatasetArgs([]string{bad})
		assert.Error(t, err, bad)
	}
}

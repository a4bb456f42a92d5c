package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunServe_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	err := runServe(serveCmd, nil)
	assert.ErrorContains(t, err, "DATABASE_URL environment variable is required")
}

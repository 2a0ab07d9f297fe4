package database

import (
	"testing"

	"blog-api/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "blog",
		DBPassword: "secret",
		DBName:     "blog_test",
		DBSSLMode:  "require",
	}

	assert.Equal(t, "host=db.internal user=blog password=secret dbname=blog_test port=5433 sslmode=require", DSN(cfg))
}

package s3

import (
	"strings"
	"testing"

	"blog-api/pkg/config"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, cfg *config.Config) *Client {
	t.Helper()

	sess, err := session.NewSession(newAWSConfig(cfg))
	require.NoError(t, err)
	return &Client{s3Client: s3.New(sess), bucket: cfg.S3BucketName}
}

func TestURL_AWS(t *testing.T) {
	client := newTestClient(t, &config.Config{AWSRegion: "eu-west-1", S3BucketName: "media"})
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com/users/u-1/a.png", client.URL("users/u-1/a.png"))
}

func TestURL_MinIO(t *testing.T) {
	client := newTestClient(t, &config.Config{
		AWSRegion:    "us-east-1",
		AWSEndpoint:  "http://localhost:9000",
		S3UseSSL:     "false",
		S3BucketName: "media",
	})
	assert.Equal(t, "http://localhost:9000/media/a.png", client.URL("a.png"))
}

func TestNewClient_RequiresBucket(t *testing.T) {
	_, err := NewClient(&config.Config{})
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("users/u-1", "Photo.JPG")
	assert.True(t, strings.HasPrefix(key, "users/u-1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, ObjectKey("users/u-1", "Photo.JPG"))
}

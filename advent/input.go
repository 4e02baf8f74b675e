package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// objectGetter is the part of the S3 API used to fetch inputs.
type objectGetter interface {
	GetObject(*s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

// An inputLoader finds the input for a day: first in the local input dir,
// then (if a bucket is configured) in S3. Objects fetched from S3 are
// cached in the input dir.
type inputLoader struct {
	dir    string
	bucket string
	prefix string

	newClient func() (objectGetter, error)

	mu     sync.Mutex
	client objectGetter
}

func newInputLoader(cfg *config) *inputLoader {
	return &inputLoader{
		dir:    cfg.inputDir,
		bucket: cfg.bucket,
		prefix: cfg.prefix,
		newClient: func() (objectGetter, error) {
			return newS3Client(cfg.region, cfg.awsProfile)
		},
	}
}

func inputName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// load returns the input for day along with a description of where it
// came from.
func (l *inputLoader) load(day int) ([]byte, string, error) {
	path := filepath.Join(l.dir, inputName(day))
	b, err := os.ReadFile(path)
	if err == nil {
		return b, path, nil
	}
	if !errors.Is(err, fs.ErrNotExist) || l.bucket == "" {
		return nil, "", fmt.Errorf("cannot load input for day %d: %w", day, err)
	}

	key := l.prefix + inputName(day)
	b, err = l.fetch(key)
	if err != nil {
		return nil, "", fmt.Errorf("input for day %d not found at %s; fetching s3://%s/%s: %s",
			day, path, l.bucket, key, err)
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return nil, "", err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return nil, "", fmt.Errorf("error caching input: %s", err)
	}
	return b, fmt.Sprintf("s3://%s/%s", l.bucket, key), nil
}

func (l *inputLoader) s3Client() (objectGetter, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.client == nil {
		c, err := l.newClient()
		if err != nil {
			return nil, err
		}
		l.client = c
	}
	return l.client, nil
}

func (l *inputLoader) fetch(key string) ([]byte, error) {
	client, err := l.s3Client()
	if err != nil {
		return nil, err
	}
	resp, err := client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func newS3Client(region, profile string) (*s3.S3, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot find home dir: %s", err)
	}
	credsFile := filepath.Join(home, ".aws", "credentials")
	// NewSharedCredentials doesn't report a missing file until first use.
	if _, err := os.Stat(credsFile); err != nil {
		return nil, fmt.Errorf("error statting credentials file (%s): %s", credsFile, err)
	}
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewSharedCredentials(credsFile, profile),
		Region:      aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating aws session: %s", err)
	}
	return s3.New(sess), nil
}
